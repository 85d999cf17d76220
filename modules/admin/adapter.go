package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// adminAdapter wraps ServiceContainer for type-safe cross-module communication.
type adminAdapter struct {
	container mono.ServiceContainer
}

// NewAdminAdapter creates a new adapter for admin services.
func NewAdminAdapter(container mono.ServiceContainer) AdminPort {
	if container == nil {
		panic("admin adapter requires non-nil ServiceContainer")
	}
	return &adminAdapter{container: container}
}

// Login exchanges the secret for a token via the admin-login service.
func (a *adminAdapter) Login(ctx context.Context, secret string) (*LoginResponse, error) {
	req := LoginRequest{Secret: secret}
	var resp LoginResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"admin-login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("admin-login service call failed: %w", err))
	}
	return &resp, nil
}

// Verify checks a token via the admin-verify service.
func (a *adminAdapter) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	req := VerifyRequest{Token: token}
	var resp VerifyResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"admin-verify",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("admin-verify service call failed: %w", err))
	}
	return &resp, nil
}
