package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrVariantNotFound is returned when a product has no variant with the requested id.
	ErrVariantNotFound = errors.New("variant not found")
)
