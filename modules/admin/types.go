package admin

import (
	"context"
	"time"
)

// LoginRequest carries the admin secret.
type LoginRequest struct {
	Secret string `json:"secret"`
}

// LoginResponse carries a bearer token for admin routes.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyRequest carries a token to check.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse reports whether a token is valid.
type VerifyResponse struct {
	Valid     bool      `json:"valid"`
	TokenID   string    `json:"token_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// AdminPort defines the interface for admin operations used by other modules.
type AdminPort interface {
	Login(ctx context.Context, secret string) (*LoginResponse, error)
	Verify(ctx context.Context, token string) (*VerifyResponse, error)
}
