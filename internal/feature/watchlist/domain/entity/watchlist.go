// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Asset type values stored on a watchlist entry.
const (
	TypeStocks = "stocks"
	TypeCrypto = "crypto"
)

// Watchlist is one tracked symbol for one user. A user may track the same
// symbol at most once per asset type.
type Watchlist struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"index;not null"`
	Symbol string `gorm:"size:50;not null;index"`
	Type   string `gorm:"size:20;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holding is the owned position behind a watchlist entry.
// AverageCost is the weighted average purchase price across buys.
type Holding struct {
	ID          uint    `gorm:"primaryKey"`
	WatchlistID uint    `gorm:"index;not null"`
	Shares      float64 `gorm:"not null;default:0"`
	AverageCost float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Position is a holding joined with its watchlist symbol, used for
// portfolio-wide valuation.
type Position struct {
	Symbol string
	Type   string
	Shares float64
}
