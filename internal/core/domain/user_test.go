package domain_test

import (
	"testing"

	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("Success: Normalizes email to lowercase", func(t *testing.T) {
		u, err := domain.NewUser("u1", "Alex", "  Alex@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "Alex", u.Name)
		assert.Equal(t, "alex@example.com", u.Email)
	})

	t.Run("Error: Invalid email", func(t *testing.T) {
		_, err := domain.NewUser("u1", "Alex", "not-an-email")
		assert.Equal(t, domain.ErrInvalidEmail, err)
	})
}

func TestUser_Password(t *testing.T) {
	t.Run("Success: Set and verify", func(t *testing.T) {
		u, _ := domain.NewUser("u1", "Alex", "alex@example.com")

		require.NoError(t, u.SetPassword("correct horse battery"))

		assert.NotEmpty(t, u.PasswordHash)
		assert.NotContains(t, u.PasswordHash, "correct horse")
		assert.NoError(t, u.CheckPassword("correct horse battery"))
		assert.Error(t, u.CheckPassword("wrong password"))
	})

	t.Run("Error: Too short", func(t *testing.T) {
		u, _ := domain.NewUser("u1", "Alex", "alex@example.com")
		assert.Equal(t, domain.ErrPasswordTooShort, u.SetPassword("short"))
	})
}
