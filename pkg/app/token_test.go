package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", "notin-service", time.Hour)

	token, err := m.GenerateToken(42, "alice", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "127.0.0.1", claims.IP)
}

func TestTokenWrongSecret(t *testing.T) {
	m := NewTokenManager("secret-a", "notin-service", time.Hour)
	token, err := m.GenerateToken(1, "bob", "")
	require.NoError(t, err)

	other := NewTokenManager("secret-b", "notin-service", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", "notin-service", -time.Minute)
	token, err := m.GenerateToken(1, "bob", "")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err)
}
