package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
	"timbrapp.com/timbrapp/attendance/store"
)

// sha256("1234"), the format the old tablet client wrote.
const legacyHash1234 = "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4"

func TestVerifyPassword(t *testing.T) {
	bcryptHash, err := HashPassword("segreto99")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		expected bool
	}{
		{
			name:     "Bcrypt match",
			password: "segreto99",
			hash:     bcryptHash,
			expected: true,
		},
		{
			name:     "Bcrypt mismatch",
			password: "segreto98",
			hash:     bcryptHash,
			expected: false,
		},
		{
			name:     "Legacy SHA-256 match",
			password: "1234",
			hash:     legacyHash1234,
			expected: true,
		},
		{
			name:     "Legacy SHA-256 match with uppercase hex",
			password: "1234",
			hash:     "03AC674216F3E15C761EE1A5E255F067953623C8B388B4459E13F978D7C846F4",
			expected: true,
		},
		{
			name:     "Legacy SHA-256 mismatch",
			password: "4321",
			hash:     legacyHash1234,
			expected: false,
		},
		{
			name:     "Empty stored hash",
			password: "anything",
			hash:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifyPassword(tt.password, tt.hash))
		})
	}
}

func TestAuthenticateEmployee(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	svc := NewService(s)

	active := &model.Employee{Name: "Rossi Mario", Active: true, PasswordHash: legacyHash1234}
	require.NoError(t, s.CreateEmployee(ctx, active))
	inactive := &model.Employee{Name: "Verdi Anna", Active: false, PasswordHash: legacyHash1234}
	require.NoError(t, s.CreateEmployee(ctx, inactive))

	t.Run("Valid credentials", func(t *testing.T) {
		emp, err := svc.AuthenticateEmployee(ctx, active.ID, "1234")
		require.NoError(t, err)
		assert.Equal(t, active.ID, emp.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.AuthenticateEmployee(ctx, active.ID, "wrong")
		assert.ErrorIs(t, err, core.ErrAuthFailure)
	})

	t.Run("Unknown employee", func(t *testing.T) {
		_, err := svc.AuthenticateEmployee(ctx, "missing", "1234")
		assert.ErrorIs(t, err, core.ErrAuthFailure)
	})

	t.Run("Inactive employee", func(t *testing.T) {
		_, err := svc.AuthenticateEmployee(ctx, inactive.ID, "1234")
		assert.ErrorIs(t, err, core.ErrInactiveEmployee)
	})
}

func TestAuthenticateAdmin(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	svc := NewService(s)

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	admin := s.CreateAdmin(model.AdminUser{Username: "admin", PasswordHash: hash})

	t.Run("Valid credentials", func(t *testing.T) {
		got, err := svc.AuthenticateAdmin(ctx, "admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.AuthenticateAdmin(ctx, "admin", "nope")
		assert.ErrorIs(t, err, core.ErrAuthFailure)
	})

	t.Run("Unknown username", func(t *testing.T) {
		_, err := svc.AuthenticateAdmin(ctx, "root", "admin123")
		assert.ErrorIs(t, err, core.ErrAuthFailure)
	})

	t.Run("Password change takes effect", func(t *testing.T) {
		require.NoError(t, svc.ChangeAdminPassword(ctx, admin.ID, "nuovaPassword1"))

		_, err := svc.AuthenticateAdmin(ctx, "admin", "admin123")
		assert.ErrorIs(t, err, core.ErrAuthFailure)
		_, err = svc.AuthenticateAdmin(ctx, "admin", "nuovaPassword1")
		assert.NoError(t, err)
	})
}
