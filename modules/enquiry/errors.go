package enquiry

import (
	"errors"

	"github.com/rohit-kumar-in/Arvind-Trader/apperr"
)

// ErrInvalidEnquiry is returned when the contact form fails validation.
var ErrInvalidEnquiry = errors.New("invalid enquiry")

func restoreError(err error) error {
	return apperr.Restore(err, ErrInvalidEnquiry)
}
