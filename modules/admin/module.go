package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// AdminModule guards the catalog management screens with a shared secret.
// Tokens are signed with a per-process key, so a restart logs every admin out.
type AdminModule struct {
	logger  types.Logger
	secret  string
	cost    int
	ttl     time.Duration
	checker *SecretChecker
	issuer  *TokenIssuer
}

// Compile-time interface checks
var (
	_ mono.Module                = (*AdminModule)(nil)
	_ mono.ServiceProviderModule = (*AdminModule)(nil)
	_ mono.HealthCheckableModule = (*AdminModule)(nil)
)

// NewModule creates a new admin module for the given secret.
func NewModule(logger types.Logger, secret string) *AdminModule {
	return &AdminModule{
		logger: logger.WithModule("admin"),
		secret: secret,
		cost:   DefaultBcryptCost,
		ttl:    DefaultTokenDuration,
	}
}

// SetTokenDuration changes how long issued tokens stay valid.
func (m *AdminModule) SetTokenDuration(d time.Duration) {
	if d > 0 {
		m.ttl = d
	}
}

// Name returns the module name.
func (m *AdminModule) Name() string {
	return "admin"
}

// RegisterServices registers the admin request-reply services.
func (m *AdminModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "admin-login", json.Unmarshal, json.Marshal, m.login,
	); err != nil {
		return fmt.Errorf("failed to register admin-login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "admin-verify", json.Unmarshal, json.Marshal, m.verify,
	); err != nil {
		return fmt.Errorf("failed to register admin-verify service: %w", err)
	}

	log.Printf("[admin] Registered services: admin-login, admin-verify")
	return nil
}

// Start hashes the secret and creates the signing key.
func (m *AdminModule) Start(_ context.Context) error {
	checker, err := NewSecretChecker(m.secret, m.cost)
	if err != nil {
		return err
	}
	issuer, err := NewTokenIssuer(m.ttl)
	if err != nil {
		return err
	}
	m.checker = checker
	m.issuer = issuer
	m.secret = ""

	log.Println("[admin] Module started")
	return nil
}

// Stop stops the module.
func (m *AdminModule) Stop(_ context.Context) error {
	log.Println("[admin] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AdminModule) Health(_ context.Context) mono.HealthStatus {
	if m.issuer == nil {
		return mono.HealthStatus{Healthy: false, Message: "not started"}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}
