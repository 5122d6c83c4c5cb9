// Package entity defines the domain models for the quotes feature.
package entity

import (
	"encoding/json"
	"time"
)

// AssetKind distinguishes how a symbol is resolved against the provider.
type AssetKind string

const (
	KindStock  AssetKind = "stock"
	KindCrypto AssetKind = "crypto"
)

// SymbolRequest identifies one asset to price in a given display currency.
type SymbolRequest struct {
	Symbol   string    // Ticker symbol (e.g., "AAPL", "BTC")
	Kind     AssetKind // stock or crypto
	Currency string    // ISO currency code the price is reported in (e.g., "USD", "GBP")
}

// PricePoint is the priced snapshot for one requested symbol. Fields the
// provider could not supply hold the unavailable sentinel.
type PricePoint struct {
	Symbol        string `json:"symbol"`
	Price         Amount `json:"price"`
	MarketCap     Amount `json:"market_cap"`
	ChangePercent Amount `json:"change_percent"`
	LogoURL       string `json:"logo_url,omitempty"`
}

// HasPrice reports whether the snapshot carries a usable price.
func (p PricePoint) HasPrice() bool {
	return !p.Price.IsUnavailable()
}

// SeriesPoint is one downsampled observation in a historical series.
type SeriesPoint struct {
	Time          time.Time `json:"time"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	PercentChange float64   `json:"percent_change"`
}

// SeriesResult holds one timeframe's series, or marks it unavailable when
// the provider had no data for that window.
type SeriesResult struct {
	Points      []SeriesPoint
	Unavailable bool
}

// MarshalJSON renders the points array, or an explicit error object when
// the timeframe is unavailable, so partial responses stay self-describing.
func (r SeriesResult) MarshalJSON() ([]byte, error) {
	if r.Unavailable {
		return json.Marshal(map[string]string{"error": "no data found"})
	}
	return json.Marshal(r.Points)
}

// TimeframeSeries maps a timeframe label (e.g., "1 Day") to its result.
type TimeframeSeries map[string]SeriesResult
