package checkout

import (
	"fmt"
	"strings"

	nanoid "github.com/jaevor/go-nanoid"
)

// OrderNumberPrefix starts every order number.
const OrderNumberPrefix = "AT-"

// orderAlphabet avoids lowercase so numbers read well over the phone.
const orderAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderCodeLength is the number of random characters after the prefix.
const OrderCodeLength = 10

// NewOrderNumberGenerator returns a generator of "AT-" prefixed order numbers.
func NewOrderNumberGenerator() (func() string, error) {
	gen, err := nanoid.CustomASCII(orderAlphabet, OrderCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create order number generator: %w", err)
	}
	return func() string {
		return OrderNumberPrefix + gen()
	}, nil
}

// IsValidOrderNumber checks the prefix, length and alphabet of an order number.
func IsValidOrderNumber(number string) bool {
	code, ok := strings.CutPrefix(number, OrderNumberPrefix)
	if !ok || len(code) != OrderCodeLength {
		return false
	}
	for _, c := range code {
		if !strings.ContainsRune(orderAlphabet, c) {
			return false
		}
	}
	return true
}
