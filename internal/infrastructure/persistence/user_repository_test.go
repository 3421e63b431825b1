package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/identity"
	"github.com/openpharm/backend/internal/domain/shared"
)

// setupUserTestDB creates an in-memory SQLite database for testing
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&identity.User{})
	require.NoError(t, err)

	return db
}

func TestGormUserRepository(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("Rahim Uddin", "rahim@pharmacy.example", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("finds user by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("finds user by email case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "  Rahim@Pharmacy.Example ")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("reports unknown user as not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("checks email existence", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "rahim@pharmacy.example")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@pharmacy.example")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("updates a user", func(t *testing.T) {
		user.Name = "Rahim U."
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rahim U.", found.Name)
	})
}
