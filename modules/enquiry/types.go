package enquiry

import (
	"context"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/enquiry"
)

// SubmitEnquiryRequest is the contact form.
type SubmitEnquiryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required,mobile"`
	Requirement string `json:"requirement" validate:"required,max=5000"`
}

// SubmitEnquiryResponse acknowledges a stored enquiry.
type SubmitEnquiryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ListEnquiriesRequest is the admin request for recent enquiries.
type ListEnquiriesRequest struct {
	Limit int `json:"limit"`
}

// ListEnquiriesResponse lists enquiries newest first.
type ListEnquiriesResponse struct {
	Enquiries []domain.Enquiry `json:"enquiries"`
	Total     int64            `json:"total"`
}

// EnquiryPort defines the interface for enquiry operations used by other modules.
type EnquiryPort interface {
	Submit(ctx context.Context, req *SubmitEnquiryRequest) (*SubmitEnquiryResponse, error)
	List(ctx context.Context, limit int) (*ListEnquiriesResponse, error)
}
