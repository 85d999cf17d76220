package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberGenerator(t *testing.T) {
	gen, err := NewOrderNumberGenerator()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 100 {
		n := gen()
		assert.True(t, strings.HasPrefix(n, OrderNumberPrefix))
		assert.Len(t, n, len(OrderNumberPrefix)+OrderCodeLength)
		assert.True(t, IsValidOrderNumber(n), n)
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestIsValidOrderNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"valid", "AT-0A1B2C3D4E", true},
		{"missing prefix", "0A1B2C3D4E", false},
		{"wrong prefix", "XX-0A1B2C3D4E", false},
		{"too short", "AT-0A1B2", false},
		{"too long", "AT-0A1B2C3D4E5", false},
		{"lowercase", "AT-0a1b2c3d4e", false},
		{"symbols", "AT-0A1B2C3D4_", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidOrderNumber(tt.number))
		})
	}
}
