// Package entity defines the domain model for price alerts.
package entity

import "time"

// UserAlert is a one-shot price alert owned by an email address.
// IsActive is cleared once the alert has fired so it never triggers twice.
type UserAlert struct {
	ID          uint    `gorm:"primaryKey"`
	Email       string  `gorm:"size:255;not null;index"`
	Symbol      string  `gorm:"size:50;not null"`
	TargetPrice float64 `gorm:"not null"`
	IsActive    bool    `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
