package admin

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps login checks fast; the hash never leaves memory.
const DefaultBcryptCost = bcrypt.DefaultCost

// SecretChecker compares submitted secrets with a bcrypt hash of the
// configured admin secret.
type SecretChecker struct {
	hash []byte
}

// NewSecretChecker hashes the configured secret.
func NewSecretChecker(secret string, cost int) (*SecretChecker, error) {
	if secret == "" {
		return nil, fmt.Errorf("admin secret must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin secret: %w", err)
	}
	return &SecretChecker{hash: hash}, nil
}

// Matches reports whether the submitted secret is correct.
func (c *SecretChecker) Matches(secret string) bool {
	return bcrypt.CompareHashAndPassword(c.hash, []byte(secret)) == nil
}
