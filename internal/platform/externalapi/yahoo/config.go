// Package yahoo provides a client for the Yahoo Finance public quote and
// chart APIs.
package yahoo

import "time"

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	QuoteBaseURL string        // Base URL for the quote endpoint (e.g., "https://query1.finance.yahoo.com/v7/finance")
	ChartBaseURL string        // Base URL for the chart endpoint (e.g., "https://query1.finance.yahoo.com/v8/finance")
	Timeout      time.Duration // HTTP request timeout
}
