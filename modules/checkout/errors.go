package checkout

import (
	"errors"

	"github.com/rohit-kumar-in/Arvind-Trader/apperr"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/order"
)

// Sentinel errors for checkout services.
var (
	// ErrEmptyCart is returned when checking out a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidOrder is returned when the checkout form fails validation.
	ErrInvalidOrder = errors.New("invalid order")
)

func restoreError(err error) error {
	return apperr.Restore(err,
		domain.ErrOrderNotFound,
		ErrEmptyCart,
		ErrInvalidOrder,
	)
}
