package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile" validate:"required,mobile"`
}

func TestNew_Mobile(t *testing.T) {
	v := New()

	tests := []struct {
		mobile string
		valid  bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"98765 43210", true},
		{"12345", false},
		{"98765-43210", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			err := v.Struct(contactForm{Name: "Asha", Email: "asha@example.com", Mobile: tt.mobile})
			assert.Equal(t, tt.valid, err == nil, "err: %v", err)
		})
	}
}

func TestFields(t *testing.T) {
	err := New().Struct(contactForm{Email: "not-an-email", Mobile: "9876543210"})
	require.Error(t, err)

	fields := Fields(err)
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "email must be a valid email",
	}, fields)
	assert.Equal(t, "email must be a valid email; name is required", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(errors.New("boom")))
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
