// Package dto defines the HTTP request and response shapes for the alerts feature.
package dto

import "stockevent_backend/internal/feature/alerts/domain/entity"

// CreateAlertReq is the request body for registering a price alert.
type CreateAlertReq struct {
	Symbol      string  `json:"symbol" binding:"required"`
	TargetPrice float64 `json:"target_price" binding:"required,gt=0"`
}

// AlertResponse is one registered alert.
type AlertResponse struct {
	ID          uint    `json:"id"`
	Symbol      string  `json:"symbol"`
	TargetPrice float64 `json:"target_price"`
	IsActive    bool    `json:"is_active"`
}

// FromEntity maps a persisted alert to its response shape.
func FromEntity(a entity.UserAlert) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		Symbol:      a.Symbol,
		TargetPrice: a.TargetPrice,
		IsActive:    a.IsActive,
	}
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
