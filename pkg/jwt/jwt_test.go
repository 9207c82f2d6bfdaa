package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.GenerateAccessToken("user-123", "chef")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "chef", claims.Username)
	assert.Equal(t, "access", claims.Type)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 60).GenerateAccessToken("user-123", "chef")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 60).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateAccessToken("user-123", "chef")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenIsNotAccessToken(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 60)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
