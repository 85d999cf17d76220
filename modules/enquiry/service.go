package enquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/enquiry"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
)

// AcknowledgeMessage is returned to the shopper after a submission.
const AcknowledgeMessage = "Thank you for your message. We will get back to you soon!"

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// submitEnquiry handles the submit-enquiry service request.
func (m *EnquiryModule) submitEnquiry(ctx context.Context, req SubmitEnquiryRequest, _ *mono.Msg) (SubmitEnquiryResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Mobile = strings.ReplaceAll(strings.TrimSpace(req.Mobile), " ", "")
	req.Requirement = strings.TrimSpace(req.Requirement)

	if err := m.validate.Struct(req); err != nil {
		return SubmitEnquiryResponse{}, fmt.Errorf("%w: %s", ErrInvalidEnquiry, validation.Describe(err))
	}

	e := &domain.Enquiry{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Requirement: req.Requirement,
		CreatedAt:   time.Now(),
	}
	if err := m.repo.Create(ctx, e); err != nil {
		return SubmitEnquiryResponse{}, fmt.Errorf("failed to save enquiry: %w", err)
	}

	if m.eventBus != nil {
		if err := events.EnquiryReceivedV1.Publish(m.eventBus, events.EnquiryReceivedEvent{
			EnquiryID:  e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Mobile:     e.Mobile,
			ReceivedAt: e.CreatedAt,
		}, nil); err != nil {
			m.logger.Warn("Failed to publish EnquiryReceived", "id", e.ID, "error", err)
		}
	}

	m.logger.Info("Enquiry received", "id", e.ID, "email", e.Email)
	return SubmitEnquiryResponse{ID: e.ID, Message: AcknowledgeMessage}, nil
}

// listEnquiries handles the list-enquiries service request.
func (m *EnquiryModule) listEnquiries(ctx context.Context, req ListEnquiriesRequest, _ *mono.Msg) (ListEnquiriesResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	items, err := m.repo.List(ctx, limit)
	if err != nil {
		return ListEnquiriesResponse{}, fmt.Errorf("failed to list enquiries: %w", err)
	}
	total, err := m.repo.Count(ctx)
	if err != nil {
		return ListEnquiriesResponse{}, fmt.Errorf("failed to count enquiries: %w", err)
	}
	return ListEnquiriesResponse{Enquiries: items, Total: total}, nil
}
