package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	before := time.Now()
	token, expiresAt, err := svc.GenerateAccessToken("0192f1a4-1111-7000-8000-000000000001", user.RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.InDelta(t, before.Add(24*time.Hour).Unix(), expiresAt, 2)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "0192f1a4-1111-7000-8000-000000000001", claims["user_id"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
	assert.Equal(t, expiresAt, decoded.Expiration().Unix())
}

func TestGenerateAccessToken_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	other := NewJWTService("secret-b", time.Hour)

	token, _, err := issuer.GenerateAccessToken("u1", user.RoleEmployee)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), token)
	assert.Error(t, err)
}

func TestGenerateAccessToken_ExpiredRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour).(*JWTService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken("u1", user.RoleEmployee)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(svc.JWTAuth(), token)
	assert.Error(t, err)
}
