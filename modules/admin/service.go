package admin

import (
	"context"

	"github.com/go-monolith/mono"
)

// login handles the admin-login service request.
func (m *AdminModule) login(_ context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	if !m.checker.Matches(req.Secret) {
		m.logger.Warn("Admin login rejected")
		return LoginResponse{}, ErrInvalidSecret
	}

	token, expires, err := m.issuer.Issue()
	if err != nil {
		return LoginResponse{}, err
	}

	m.logger.Info("Admin logged in", "expires_at", expires)
	return LoginResponse{Token: token, TokenType: "Bearer", ExpiresAt: expires}, nil
}

// verify handles the admin-verify service request. Bad tokens are reported
// as invalid rather than returned as errors.
func (m *AdminModule) verify(_ context.Context, req VerifyRequest, _ *mono.Msg) (VerifyResponse, error) {
	claims, err := m.issuer.Verify(req.Token)
	if err != nil {
		return VerifyResponse{Valid: false}, nil
	}
	return VerifyResponse{
		Valid:     true,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
