package admin

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTokenDuration is how long an admin token stays valid.
	DefaultTokenDuration = 12 * time.Hour

	tokenIssuer   = "arvind-trader"
	tokenSubject  = "admin"
	signingKeyLen = 32
)

// Claims are the claims carried by an admin token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and checks admin tokens with a key that only lives as
// long as the process.
type TokenIssuer struct {
	key      []byte
	duration time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates an issuer with a fresh random signing key.
func NewTokenIssuer(duration time.Duration) (*TokenIssuer, error) {
	key := make([]byte, signingKeyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	if duration <= 0 {
		duration = DefaultTokenDuration
	}
	return &TokenIssuer{key: key, duration: duration, now: time.Now}, nil
}

// Issue returns a signed token and its expiry.
func (i *TokenIssuer) Issue() (string, time.Time, error) {
	now := i.now()
	expires := now.Add(i.duration)
	claims := Claims{
		Role: tokenSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify checks the token's signature, issuer and expiry.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.key, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != tokenSubject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
