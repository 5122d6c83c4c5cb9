// Package usecase は価格取得と履歴系列生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"
)

// ProviderQuote is one raw quote as the market data provider reports it.
// Nil fields were absent from the provider response.
type ProviderQuote struct {
	Price         *float64
	PreviousClose *float64
	ChangePercent *float64
	MarketCap     *float64
}

// ProviderBar is one close observation in a provider history response.
type ProviderBar struct {
	Time  time.Time
	Close float64
}

// MarketDataClient は外部マーケットデータプロバイダを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketDataClient interface {
	// FetchQuotes は複数銘柄の現在値を1回の呼び出しで取得します。
	// 返り値のマップは大文字化されたプロバイダシンボルをキーとします。
	FetchQuotes(ctx context.Context, symbols []string) (map[string]ProviderQuote, error)
	// FetchHistory は1銘柄の履歴終値を取得します。データなしは空スライスです。
	FetchHistory(ctx context.Context, symbol, period, interval string) ([]ProviderBar, error)
}

// CacheStore はdegrade-to-missセマンティクスのキャッシュを抽象化します。
type CacheStore interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

// RateSource は通貨ペアの為替レートを解決します。
type RateSource interface {
	// Rate はfromからtoへの換算レートを返します。同一通貨は常に1です。
	Rate(ctx context.Context, from, to string) (float64, error)
}
