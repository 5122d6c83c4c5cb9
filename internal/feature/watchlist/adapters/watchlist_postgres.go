// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockevent_backend/internal/feature/watchlist/domain/entity"
	"stockevent_backend/internal/feature/watchlist/usecase"
)

// watchlistPostgres はWatchlistRepositoryインターフェースのPostgreSQL実装です。
type watchlistPostgres struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistPostgres)(nil)

// NewWatchlistPostgres は指定されたgorm.DB接続でwatchlistPostgresの新しいインスタンスを生成します。
func NewWatchlistPostgres(db *gorm.DB) *watchlistPostgres {
	return &watchlistPostgres{db: db}
}

// Create はエントリを追加します。同一ユーザー・銘柄・種別の組が既に
// 存在する場合、usecase.ErrAlreadyInWatchlistを返します。
func (r *watchlistPostgres) Create(ctx context.Context, w *entity.Watchlist) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Watchlist{}).
		Where("user_id = ? AND symbol = ? AND type = ?", w.UserID, w.Symbol, w.Type).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrAlreadyInWatchlist
	}
	return r.db.WithContext(ctx).Create(w).Error
}

// FindByUserAndSymbol はユーザーと銘柄でエントリを取得します。
func (r *watchlistPostgres) FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.Watchlist, error) {
	var w entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrWatchlistNotFound
		}
		return nil, err
	}
	return &w, nil
}

// ListByUser はユーザーの全エントリを返します。
func (r *watchlistPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error) {
	var entries []entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FirstIDByUser はユーザーの最初のウォッチリストIDを返します。
func (r *watchlistPostgres) FirstIDByUser(ctx context.Context, userID uint) (uint, error) {
	var w entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, usecase.ErrWatchlistNotFound
		}
		return 0, err
	}
	return w.ID, nil
}

// DeleteSymbol は指定ウォッチリストから銘柄を削除します。
// ウォッチリストが存在しないか他ユーザーのものならErrWatchlistNotFound、
// 銘柄が含まれていなければErrSymbolNotFoundを返します。
func (r *watchlistPostgres) DeleteSymbol(ctx context.Context, watchlistID, userID uint, symbol string) error {
	var w entity.Watchlist
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", watchlistID, userID).
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrWatchlistNotFound
		}
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND symbol = ?", watchlistID, symbol).
		Delete(&entity.Watchlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSymbolNotFound
	}
	return nil
}
