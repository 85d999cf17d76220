package catalog

import (
	"errors"

	"github.com/rohit-kumar-in/Arvind-Trader/apperr"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// Sentinel errors for catalog services.
var (
	// ErrInvalidProduct is returned when an admin draft fails validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidImage is returned for an empty hero image.
	ErrInvalidImage = errors.New("invalid image url")
)

func restoreError(err error) error {
	return apperr.Restore(err,
		domain.ErrProductNotFound,
		domain.ErrVariantNotFound,
		ErrInvalidProduct,
		ErrInvalidImage,
	)
}
