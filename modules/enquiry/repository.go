package enquiry

import (
	"context"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/enquiry"
	"gorm.io/gorm"
)

// EnquiryRepository handles enquiry persistence using GORM.
type EnquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new EnquiryRepository.
func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create stores a new enquiry.
func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// List returns up to limit enquiries, newest first.
func (r *EnquiryRepository) List(ctx context.Context, limit int) ([]domain.Enquiry, error) {
	var out []domain.Enquiry
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out)
	if result.Error != nil {
		return nil, result.Error
	}
	return out, nil
}

// Count returns the number of stored enquiries.
func (r *EnquiryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	result := r.db.WithContext(ctx).Model(&domain.Enquiry{}).Count(&n)
	return n, result.Error
}
