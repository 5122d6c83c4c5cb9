// Package di provides dependency injection factories for creating application components.
package di

import (
	"stockevent_backend/internal/feature/quotes/adapters"
	"stockevent_backend/internal/platform/config"
	"stockevent_backend/internal/platform/externalapi/yahoo"
	infrahttp "stockevent_backend/internal/platform/http"
)

// NewMarketData creates a fully configured Yahoo Finance market data adapter
// with a tuned HTTP client.
func NewMarketData(cfg config.Config) *adapters.YahooMarketData {
	client := yahoo.NewClient(yahoo.Config{
		QuoteBaseURL: cfg.QuoteBaseURL,
		ChartBaseURL: cfg.ChartBaseURL,
		Timeout:      cfg.ProviderTimeout,
	}, infrahttp.NewHTTPClient(cfg.ProviderTimeout))
	return adapters.NewYahooMarketData(client)
}
