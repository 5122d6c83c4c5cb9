// Package adapters は外部プロバイダをusecase層のインターフェースに適合させます。
package adapters

import (
	"context"

	"stockevent_backend/internal/feature/quotes/usecase"
	"stockevent_backend/internal/platform/externalapi/yahoo"
)

// YahooMarketData adapts the Yahoo Finance client to the usecase contract.
type YahooMarketData struct {
	client *yahoo.Client
}

// NewYahooMarketData はYahooMarketDataの新しいインスタンスを生成します。
func NewYahooMarketData(client *yahoo.Client) *YahooMarketData {
	return &YahooMarketData{client: client}
}

var _ usecase.MarketDataClient = (*YahooMarketData)(nil)

// FetchQuotes は複数銘柄の現在値を取得しusecase層の型へ変換します。
func (m *YahooMarketData) FetchQuotes(ctx context.Context, symbols []string) (map[string]usecase.ProviderQuote, error) {
	quotes, err := m.client.FetchQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	out := make(map[string]usecase.ProviderQuote, len(quotes))
	for symbol, q := range quotes {
		out[symbol] = usecase.ProviderQuote{
			Price:         q.Price,
			PreviousClose: q.PreviousClose,
			ChangePercent: q.ChangePercent,
			MarketCap:     q.MarketCap,
		}
	}
	return out, nil
}

// FetchHistory は1銘柄の履歴終値を取得しusecase層の型へ変換します。
func (m *YahooMarketData) FetchHistory(ctx context.Context, symbol, period, interval string) ([]usecase.ProviderBar, error) {
	bars, err := m.client.FetchHistory(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ProviderBar, len(bars))
	for i, b := range bars {
		out[i] = usecase.ProviderBar{Time: b.Time, Close: b.Close}
	}
	return out, nil
}
