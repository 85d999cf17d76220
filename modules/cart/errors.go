package cart

import (
	"errors"

	"github.com/rohit-kumar-in/Arvind-Trader/apperr"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// ErrMissingSession is returned when a cart request carries no session id.
var ErrMissingSession = errors.New("session id is required")

func restoreError(err error) error {
	return apperr.Restore(err,
		catalog.ErrProductNotFound,
		catalog.ErrVariantNotFound,
		domain.ErrStoreNotProvided,
		ErrMissingSession,
	)
}
