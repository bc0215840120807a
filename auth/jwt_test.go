package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiroute/types"
)

func testUser() *types.User {
	return &types.User{
		UID:   "uid-123",
		Email: "relief@example.org",
		Role:  types.RoleNGO,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "relief@example.org", claims.Email)
	assert.Equal(t, types.RoleNGO, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "optiroute-api", claims.Issuer)
}

func TestTokenTypeEnforcement(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	access, err := m.GenerateToken(testUser())
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	t.Run("refresh token round trip", func(t *testing.T) {
		claims, err := m.ValidateRefreshToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, "uid-123", claims.UID)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		_, err := m.ValidateRefreshToken(access)
		assert.Error(t, err)
	})

	t.Run("refresh token is not accepted as an access token", func(t *testing.T) {
		_, err := m.ValidateToken(refresh)
		assert.Error(t, err)
	})
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.GenerateToken(testUser())
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
		token, err := short.GenerateToken(testUser())
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := m.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestExtractToken(t *testing.T) {
	token, err := ExtractToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractToken("")
	assert.Error(t, err)

	_, err = ExtractToken("Basic abc123")
	assert.Error(t, err)
}
