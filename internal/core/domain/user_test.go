package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masnaviev/habit-tracker/internal/core/domain"
)

func TestNewUser(t *testing.T) {
	t.Run("Success: Normalizes email and defaults to user role", func(t *testing.T) {
		u, err := domain.NewUser("Alice", "  Alice@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, domain.RoleUser, u.Role)
		assert.False(t, u.Blocked)
	})

	t.Run("Error: Invalid email", func(t *testing.T) {
		_, err := domain.NewUser("Bob", "not-an-email")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestUser_Password(t *testing.T) {
	u, err := domain.NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	t.Run("Error: Too short", func(t *testing.T) {
		assert.ErrorIs(t, u.SetPassword("short"), domain.ErrPasswordTooShort)
	})

	t.Run("Success: Hash verifies and rejects wrong password", func(t *testing.T) {
		require.NoError(t, u.SetPassword("correct horse battery"))
		assert.NoError(t, u.CheckPassword("correct horse battery"))
		assert.ErrorIs(t, u.CheckPassword("wrong"), domain.ErrInvalidCredentials)
	})
}
