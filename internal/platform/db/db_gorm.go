package db

import (
	"fmt"
	"log/slog"
	"time"

	"stockevent_backend/internal/feature/alerts/domain/entity"
	authentity "stockevent_backend/internal/feature/auth/domain/entity"
	watchentity "stockevent_backend/internal/feature/watchlist/domain/entity"
	"stockevent_backend/internal/platform/config"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Opener はDSNからgorm.DBを開く関数型です。テストで差し替え可能にします。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN は設定からPostgreSQL接続用のDSN文字列を生成します。
func BuildDSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
}

// ConnectWithRetry は接続が成功するまでリトライします。
// DBコンテナの起動がアプリより遅れるケースを吸収するためです。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}
}

// Open はDBへ接続し、必要ならマイグレーションを実行します。
func Open(cfg config.Config) (*gorm.DB, error) {
	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, open)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&watchentity.Watchlist{},
			&watchentity.Holding{},
			&entity.UserAlert{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
