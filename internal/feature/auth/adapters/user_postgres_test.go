package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockevent_backend/internal/feature/auth/domain/entity"
	"stockevent_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		user := &entity.User{
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		first := &entity.User{Email: "dup@example.com", Password: "hash1"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Email: "dup@example.com", Password: "hash2"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		created := &entity.User{Email: "find@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "find@example.com", found.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		_, err := repo.FindByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		created := &entity.User{Email: "byid@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "byid@example.com", found.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := NewUserPostgres(setupTestDB(t))

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
