package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockevent_backend/internal/feature/alerts/domain/entity"
	"stockevent_backend/internal/feature/alerts/usecase"
	authentity "stockevent_backend/internal/feature/auth/domain/entity"
	authusecase "stockevent_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.UserAlert{}, &authentity.User{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestAlertPostgres_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new alert with is_active set", func(t *testing.T) {
		repo := NewAlertPostgres(setupTestDB(t))

		alert := &entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}
		err := repo.Create(ctx, alert)

		require.NoError(t, err)
		assert.NotZero(t, alert.ID)
	})

	t.Run("duplicate email/symbol/target is rejected", func(t *testing.T) {
		repo := NewAlertPostgres(setupTestDB(t))

		base := entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}
		require.NoError(t, repo.Create(ctx, &base))

		dup := entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}
		err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, usecase.ErrAlertExists)
	})

	t.Run("same symbol at a different target is allowed", func(t *testing.T) {
		repo := NewAlertPostgres(setupTestDB(t))

		require.NoError(t, repo.Create(ctx, &entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}))
		err := repo.Create(ctx, &entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 250, IsActive: true})
		assert.NoError(t, err)
	})
}

func TestAlertPostgres_ListByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAlertPostgres(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.UserAlert{Email: "a@example.com", Symbol: "BTC", TargetPrice: 50000, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.UserAlert{Email: "b@example.com", Symbol: "TSLA", TargetPrice: 300, IsActive: true}))

	alerts, err := repo.ListByEmail(ctx, "a@example.com")

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "AAPL", alerts[0].Symbol)
	assert.Equal(t, "BTC", alerts[1].Symbol)
}

func TestAlertPostgres_ListActiveAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewAlertPostgres(setupTestDB(t))

	fired := entity.UserAlert{Email: "a@example.com", Symbol: "AAPL", TargetPrice: 200, IsActive: true}
	require.NoError(t, repo.Create(ctx, &fired))
	require.NoError(t, repo.Create(ctx, &entity.UserAlert{Email: "a@example.com", Symbol: "BTC", TargetPrice: 50000, IsActive: true}))

	require.NoError(t, repo.Deactivate(ctx, fired.ID))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "BTC", active[0].Symbol)

	// 無効化されたアラートも所有者の一覧には残ります。
	all, err := repo.ListByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].IsActive)
}

func TestUserEmailPostgres_EmailByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	user := authentity.User{Email: "a@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	source := NewUserEmailPostgres(db)

	email, err := source.EmailByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)

	_, err = source.EmailByID(ctx, 999)
	assert.ErrorIs(t, err, authusecase.ErrUserNotFound)
}
