package admin

import (
	"errors"

	"github.com/rohit-kumar-in/Arvind-Trader/apperr"
)

// Sentinel errors for admin services.
var (
	// ErrInvalidSecret is returned when the admin secret does not match.
	ErrInvalidSecret = errors.New("invalid admin secret")

	// ErrInvalidToken is returned for malformed or forged tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

func restoreError(err error) error {
	return apperr.Restore(err,
		ErrInvalidSecret,
		ErrExpiredToken,
		ErrInvalidToken,
	)
}
