package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockevent_backend/internal/feature/watchlist/domain/entity"
	"stockevent_backend/internal/feature/watchlist/usecase"
)

// holdingPostgres はHoldingRepositoryインターフェースのPostgreSQL実装です。
type holdingPostgres struct {
	db *gorm.DB
}

var _ usecase.HoldingRepository = (*holdingPostgres)(nil)

// NewHoldingPostgres は指定されたgorm.DB接続でholdingPostgresの新しいインスタンスを生成します。
func NewHoldingPostgres(db *gorm.DB) *holdingPostgres {
	return &holdingPostgres{db: db}
}

// FindByWatchlistID はウォッチリストIDで保有を取得します。
func (r *holdingPostgres) FindByWatchlistID(ctx context.Context, watchlistID uint) (*entity.Holding, error) {
	var h entity.Holding
	err := r.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrHoldingNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Save は保有を作成または更新します。
func (r *holdingPostgres) Save(ctx context.Context, h *entity.Holding) error {
	return r.db.WithContext(ctx).Save(h).Error
}

// ListPositionsByUser はユーザーの全保有を銘柄・種別付きで返します。
func (r *holdingPostgres) ListPositionsByUser(ctx context.Context, userID uint) ([]entity.Position, error) {
	var positions []entity.Position
	err := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Select("watchlists.symbol, watchlists.type, holdings.shares").
		Joins("JOIN watchlists ON watchlists.id = holdings.watchlist_id").
		Where("watchlists.user_id = ?", userID).
		Order("watchlists.id").
		Scan(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}
