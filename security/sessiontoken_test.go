package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	tokenStr, err := CreateSessionToken(secret, RoleEmployee, "emp-1", "Rossi Mario", now, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(secret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, claims.Role)
	assert.Equal(t, "emp-1", claims.Subject)
	assert.Equal(t, "Rossi Mario", claims.Name)
	assert.WithinDuration(t, now, claims.IssuedAt.Time, time.Second)
}

func TestParseSessionToken(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	t.Run("Wrong secret rejected", func(t *testing.T) {
		tokenStr, err := CreateSessionToken(secret, RoleAdmin, "adm-1", "admin", now, time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionToken([]byte("other-secret"), tokenStr)
		assert.Error(t, err)
	})

	t.Run("Expired token rejected", func(t *testing.T) {
		tokenStr, err := CreateSessionToken(secret, RoleAdmin, "adm-1", "admin", now.Add(-2*time.Hour), time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, tokenStr)
		assert.Error(t, err)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		tokenStr, err := CreateSessionToken(secret, "superuser", "x", "x", now, time.Hour)
		require.NoError(t, err)

		_, err = ParseSessionToken(secret, tokenStr)
		assert.Error(t, err)
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		_, err := ParseSessionToken(secret, "not.a.token")
		assert.Error(t, err)
	})
}
