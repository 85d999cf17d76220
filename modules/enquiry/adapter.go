package enquiry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// enquiryAdapter wraps ServiceContainer for type-safe cross-module communication.
type enquiryAdapter struct {
	container mono.ServiceContainer
}

// NewEnquiryAdapter creates a new adapter for enquiry services.
func NewEnquiryAdapter(container mono.ServiceContainer) EnquiryPort {
	if container == nil {
		panic("enquiry adapter requires non-nil ServiceContainer")
	}
	return &enquiryAdapter{container: container}
}

// Submit stores a contact form via the submit-enquiry service.
func (a *enquiryAdapter) Submit(ctx context.Context, req *SubmitEnquiryRequest) (*SubmitEnquiryResponse, error) {
	var resp SubmitEnquiryResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"submit-enquiry",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("submit-enquiry service call failed: %w", err))
	}
	return &resp, nil
}

// List returns recent enquiries via the list-enquiries service.
func (a *enquiryAdapter) List(ctx context.Context, limit int) (*ListEnquiriesResponse, error) {
	req := ListEnquiriesRequest{Limit: limit}
	var resp ListEnquiriesResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-enquiries",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("list-enquiries service call failed: %w", err))
	}
	return &resp, nil
}
