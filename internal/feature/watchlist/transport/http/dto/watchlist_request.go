// Package dto defines the HTTP request and response shapes for the watchlist feature.
package dto

import "stockevent_backend/internal/feature/quotes/domain/entity"

// AddSymbolReq is the request body for adding a symbol to the watchlist.
type AddSymbolReq struct {
	Symbol string `json:"symbol" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// UpdateHoldingReq is the request body for setting the owned share count.
type UpdateHoldingReq struct {
	Shares float64 `json:"shares" binding:"required,gt=0"`
}

// PricedSymbolResponse is one watchlist row with its live quote.
// Price fields serialize to "N/A" when the quote is unavailable.
type PricedSymbolResponse struct {
	Symbol        string        `json:"symbol"`
	Type          string        `json:"type"`
	Price         entity.Amount `json:"price"`
	ChangePercent entity.Amount `json:"change_percent"`
	LogoURL       string        `json:"logo_url,omitempty"`
}

// HoldingResponse is the valued view of one holding.
type HoldingResponse struct {
	Symbol       string        `json:"symbol"`
	Shares       float64       `json:"shares"`
	AverageCost  float64       `json:"average_cost"`
	CurrentPrice entity.Amount `json:"current_price"`
	PnL          entity.Amount `json:"pnl"`
	TotalValue   entity.Amount `json:"total_value"`
}

// WatchlistIDResponse carries the caller's watchlist identifier.
type WatchlistIDResponse struct {
	WatchlistID uint `json:"watchlist_id"`
}

// PortfolioValueResponse is the aggregate value of all holdings.
// Partial marks totals that exclude symbols whose price could not be resolved.
type PortfolioValueResponse struct {
	TotalValue float64 `json:"total_value"`
	Currency   string  `json:"currency"`
	Partial    bool    `json:"partial,omitempty"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
