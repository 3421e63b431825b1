package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpharm/backend/internal/domain/shared"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("Jane Doe", "Jane@Pharmacy.com", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "jane@pharmacy.com", user.Email)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret123"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects short name", func(t *testing.T) {
		_, err := NewUser("ab", "jane@pharmacy.com", "secret123")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser("Jane Doe", "not-an-email", "secret123")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("Jane Doe", "jane@pharmacy.com", "abcd")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
	})
}

func TestUserSetPassword(t *testing.T) {
	user, err := NewUser("Jane Doe", "jane@pharmacy.com", "secret123")
	require.NoError(t, err)

	oldVersion := user.GetVersion()
	require.NoError(t, user.SetPassword("newsecret"))

	assert.True(t, user.VerifyPassword("newsecret"))
	assert.False(t, user.VerifyPassword("secret123"))
	assert.Equal(t, oldVersion+1, user.GetVersion())
}
