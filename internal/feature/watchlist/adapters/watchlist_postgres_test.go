package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockevent_backend/internal/feature/watchlist/domain/entity"
	"stockevent_backend/internal/feature/watchlist/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Watchlist{}, &entity.Holding{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestWatchlistPostgres_Create(t *testing.T) {
	t.Run("adds a new entry", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))

		w := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
		err := repo.Create(context.Background(), w)

		require.NoError(t, err)
		assert.NotZero(t, w.ID)
	})

	t.Run("duplicate user/symbol/type is rejected", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "BTC", Type: entity.TypeCrypto}))
		err := repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "BTC", Type: entity.TypeCrypto})

		assert.ErrorIs(t, err, usecase.ErrAlreadyInWatchlist)
	})

	t.Run("same symbol for a different user is allowed", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "BTC", Type: entity.TypeCrypto}))
		assert.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 2, Symbol: "BTC", Type: entity.TypeCrypto}))
	})
}

func TestWatchlistPostgres_FindByUserAndSymbol(t *testing.T) {
	repo := NewWatchlistPostgres(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}))

	found, err := repo.FindByUserAndSymbol(ctx, 1, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", found.Symbol)

	_, err = repo.FindByUserAndSymbol(ctx, 2, "AAPL")
	assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)
}

func TestWatchlistPostgres_ListByUser(t *testing.T) {
	repo := NewWatchlistPostgres(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}))
	require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 1, Symbol: "BTC", Type: entity.TypeCrypto}))
	require.NoError(t, repo.Create(ctx, &entity.Watchlist{UserID: 2, Symbol: "ETH", Type: entity.TypeCrypto}))

	entries, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "AAPL", entries[0].Symbol)
	assert.Equal(t, "BTC", entries[1].Symbol)
}

func TestWatchlistPostgres_DeleteSymbol(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the symbol", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))

		w := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
		require.NoError(t, repo.Create(ctx, w))

		require.NoError(t, repo.DeleteSymbol(ctx, w.ID, 1, "AAPL"))

		_, err := repo.FindByUserAndSymbol(ctx, 1, "AAPL")
		assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)
	})

	t.Run("other user's watchlist is not found", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))

		w := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
		require.NoError(t, repo.Create(ctx, w))

		err := repo.DeleteSymbol(ctx, w.ID, 2, "AAPL")
		assert.ErrorIs(t, err, usecase.ErrWatchlistNotFound)
	})

	t.Run("symbol missing from the watchlist", func(t *testing.T) {
		repo := NewWatchlistPostgres(setupTestDB(t))

		w := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
		require.NoError(t, repo.Create(ctx, w))

		err := repo.DeleteSymbol(ctx, w.ID, 1, "MSFT")
		assert.ErrorIs(t, err, usecase.ErrSymbolNotFound)
	})
}

func TestHoldingPostgres_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	watchlists := NewWatchlistPostgres(db)
	holdings := NewHoldingPostgres(db)
	ctx := context.Background()

	w := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
	require.NoError(t, watchlists.Create(ctx, w))

	_, err := holdings.FindByWatchlistID(ctx, w.ID)
	assert.ErrorIs(t, err, usecase.ErrHoldingNotFound)

	h := &entity.Holding{WatchlistID: w.ID, Shares: 10, AverageCost: 150}
	require.NoError(t, holdings.Save(ctx, h))

	found, err := holdings.FindByWatchlistID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, found.Shares)
	assert.Equal(t, 150.0, found.AverageCost)

	// Update in place keeps a single row.
	found.Shares = 12
	require.NoError(t, holdings.Save(ctx, found))

	again, err := holdings.FindByWatchlistID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, again.Shares)
}

func TestHoldingPostgres_ListPositionsByUser(t *testing.T) {
	db := setupTestDB(t)
	watchlists := NewWatchlistPostgres(db)
	holdings := NewHoldingPostgres(db)
	ctx := context.Background()

	apple := &entity.Watchlist{UserID: 1, Symbol: "AAPL", Type: entity.TypeStocks}
	btc := &entity.Watchlist{UserID: 1, Symbol: "BTC", Type: entity.TypeCrypto}
	other := &entity.Watchlist{UserID: 2, Symbol: "ETH", Type: entity.TypeCrypto}
	require.NoError(t, watchlists.Create(ctx, apple))
	require.NoError(t, watchlists.Create(ctx, btc))
	require.NoError(t, watchlists.Create(ctx, other))

	require.NoError(t, holdings.Save(ctx, &entity.Holding{WatchlistID: apple.ID, Shares: 10, AverageCost: 150}))
	require.NoError(t, holdings.Save(ctx, &entity.Holding{WatchlistID: btc.ID, Shares: 0.5, AverageCost: 40000}))
	require.NoError(t, holdings.Save(ctx, &entity.Holding{WatchlistID: other.ID, Shares: 2, AverageCost: 3000}))

	positions, err := holdings.ListPositionsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "AAPL", positions[0].Symbol)
	assert.Equal(t, entity.TypeStocks, positions[0].Type)
	assert.Equal(t, 10.0, positions[0].Shares)
	assert.Equal(t, "BTC", positions[1].Symbol)
	assert.Equal(t, 0.5, positions[1].Shares)
}
