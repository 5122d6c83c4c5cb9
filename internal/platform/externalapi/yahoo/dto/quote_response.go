// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// QuoteResponse represents the JSON response from the v7 quote endpoint.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"quoteResponse"`
}

// QuoteResult is one symbol's entry in a quote response. Numeric fields are
// pointers: the provider omits them for unknown or partially listed symbols,
// and absence must stay distinguishable from zero.
type QuoteResult struct {
	Symbol                     string   `json:"symbol"`
	Currency                   string   `json:"currency"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	MarketCap                  *float64 `json:"marketCap"`
}

// APIError is the error object shared by the quote and chart endpoints.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
