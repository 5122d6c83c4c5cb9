// Package adapters はalertsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockevent_backend/internal/feature/alerts/domain/entity"
	"stockevent_backend/internal/feature/alerts/usecase"
	authentity "stockevent_backend/internal/feature/auth/domain/entity"
	authusecase "stockevent_backend/internal/feature/auth/usecase"
)

// alertPostgres はAlertRepositoryインターフェースのPostgreSQL実装です。
type alertPostgres struct {
	db *gorm.DB
}

var _ usecase.AlertRepository = (*alertPostgres)(nil)

// NewAlertPostgres は指定されたgorm.DB接続でalertPostgresの新しいインスタンスを生成します。
func NewAlertPostgres(db *gorm.DB) *alertPostgres {
	return &alertPostgres{db: db}
}

// Create はアラートを追加します。同一メール・銘柄・目標価格の組が既に
// 存在する場合、usecase.ErrAlertExistsを返します。
func (r *alertPostgres) Create(ctx context.Context, alert *entity.UserAlert) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.UserAlert{}).
		Where("email = ? AND symbol = ? AND target_price = ?", alert.Email, alert.Symbol, alert.TargetPrice).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return usecase.ErrAlertExists
	}
	return r.db.WithContext(ctx).Create(alert).Error
}

// ListByEmail は指定メールアドレスの全アラートを返します。
func (r *alertPostgres) ListByEmail(ctx context.Context, email string) ([]entity.UserAlert, error) {
	var alerts []entity.UserAlert
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListActive は有効な全アラートを返します。
func (r *alertPostgres) ListActive(ctx context.Context) ([]entity.UserAlert, error) {
	var alerts []entity.UserAlert
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// Deactivate はアラートを無効化します。
func (r *alertPostgres) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.UserAlert{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// userEmailPostgres はEmailSourceインターフェースのPostgreSQL実装です。
// アラートの所有者解決のためにユーザーテーブルを参照します。
type userEmailPostgres struct {
	db *gorm.DB
}

var _ usecase.EmailSource = (*userEmailPostgres)(nil)

// NewUserEmailPostgres は指定されたgorm.DB接続でuserEmailPostgresの新しいインスタンスを生成します。
func NewUserEmailPostgres(db *gorm.DB) *userEmailPostgres {
	return &userEmailPostgres{db: db}
}

// EmailByID はユーザーIDからメールアドレスを解決します。
func (r *userEmailPostgres) EmailByID(ctx context.Context, userID uint) (string, error) {
	var user authentity.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", authusecase.ErrUserNotFound
		}
		return "", err
	}
	return user.Email, nil
}
