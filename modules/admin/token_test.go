package admin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	token, expires, err := issuer.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenIssuer_UniqueIDs(t *testing.T) {
	issuer, err := NewTokenIssuer(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenDuration, issuer.duration)

	a, _, err := issuer.Issue()
	require.NoError(t, err)
	b, _, err := issuer.Issue()
	require.NoError(t, err)

	ca, err := issuer.Verify(a)
	require.NoError(t, err)
	cb, err := issuer.Verify(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue()
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_RejectsOtherKeys(t *testing.T) {
	a, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)
	b, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue()
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsMalformedAndForeign(t *testing.T) {
	issuer, err := NewTokenIssuer(time.Hour)
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(issuer.key)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":          "",
		"garbage":        "not.a.token",
		"foreign issuer": foreign,
		"alg none":       unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
