// Package dto defines the HTTP response shapes for the quotes feature.
package dto

import "stockevent_backend/internal/feature/quotes/domain/entity"

// CryptoListItem is one priced entry in a crypto listing response.
type CryptoListItem struct {
	Symbol        string        `json:"symbol"`
	ID            string        `json:"id"`
	Image         string        `json:"image"`
	Price         entity.Amount `json:"price"`
	MarketCap     entity.Amount `json:"market_cap"`
	ChangePercent entity.Amount `json:"change_percent"`
}

// StockQuoteResponse is the priced snapshot for a single stock.
type StockQuoteResponse struct {
	Symbol        string        `json:"symbol"`
	Price         entity.Amount `json:"price"`
	MarketCap     entity.Amount `json:"market_cap"`
	ChangePercent entity.Amount `json:"change_percent"`
	LogoURL       string        `json:"logo_url,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
