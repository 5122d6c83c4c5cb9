package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stockevent_backend/internal/feature/quotes/domain/entity"
	"stockevent_backend/internal/platform/cache"
)

// ErrNoHistoricalData is returned when the provider has no series at all
// for a symbol.
var ErrNoHistoricalData = errors.New("no historical data")

const (
	historyKeyPrefix = "historical_data"
	// maxSeriesPoints は1系列あたりのダウンサンプル後の上限点数です。
	maxSeriesPoints = 70
)

// timeframe は固定ウィンドウ1つのプロバイダパラメータです。
type timeframe struct {
	Label    string
	Period   string
	Interval string
}

// timeframes は常に全件取得される6つの固定ウィンドウです。
var timeframes = []timeframe{
	{"1 Day", "1d", "15m"},
	{"1 Week", "7d", "1h"},
	{"1 Month", "1mo", "1d"},
	{"3 Months", "3mo", "1d"},
	{"1 Year", "1y", "1wk"},
	{"5 Years", "5y", "1mo"},
}

// historyUsecase は履歴系列の取得・ダウンサンプル・通貨換算を行います。
type historyUsecase struct {
	market     MarketDataClient
	cache      CacheStore
	rates      RateSource
	historyTTL time.Duration
}

// NewHistoryUsecase はhistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(market MarketDataClient, cacheStore CacheStore, rates RateSource, historyTTL time.Duration) *historyUsecase {
	return &historyUsecase{market: market, cache: cacheStore, rates: rates, historyTTL: historyTTL}
}

// GetHistory は1銘柄の6タイムフレーム分の履歴系列を返します。
// 系列は常にUSDで取得し、表示通貨が異なる場合はレートで換算します。
// 取得できなかったタイムフレームは利用不可マーカー付きで返され、
// 全タイムフレームが空の場合のみエラーを返します。
func (hu *historyUsecase) GetHistory(ctx context.Context, symbol string, kind entity.AssetKind, currency string) (entity.TimeframeSeries, error) {
	symbol = strings.ToUpper(symbol)
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = "USD"
	}

	rate := 1.0
	if currency != "USD" {
		r, err := hu.rates.Rate(ctx, "USD", currency)
		if err != nil {
			return nil, fmt.Errorf("resolve display currency %s: %w", currency, err)
		}
		rate = r
	}

	fetchSymbol := symbol
	if kind == entity.KindCrypto {
		fetchSymbol = symbol + "-USD"
	}

	out := entity.TimeframeSeries{}
	empty := 0
	for _, tf := range timeframes {
		series, err := hu.seriesFor(ctx, symbol, fetchSymbol, currency, rate, tf)
		if err != nil {
			slog.Warn("history fetch failed", "symbol", symbol, "timeframe", tf.Label, "error", err)
			out[tf.Label] = entity.SeriesResult{Unavailable: true}
			empty++
			continue
		}
		if len(series) == 0 {
			out[tf.Label] = entity.SeriesResult{Unavailable: true}
			empty++
			continue
		}
		out[tf.Label] = entity.SeriesResult{Points: series}
	}

	if empty == len(timeframes) {
		return nil, fmt.Errorf("%w: %s", ErrNoHistoricalData, symbol)
	}
	return out, nil
}

// seriesFor は1タイムフレーム分の系列をキャッシュ優先で解決します。
// 空応答はキャッシュされず、次回リクエストで再試行されます。
func (hu *historyUsecase) seriesFor(ctx context.Context, symbol, fetchSymbol, currency string, rate float64, tf timeframe) ([]entity.SeriesPoint, error) {
	key := cache.Key(historyKeyPrefix, symbol, currency, tf.Period, tf.Interval)

	var cached []entity.SeriesPoint
	if hu.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	bars, err := hu.market.FetchHistory(ctx, fetchSymbol, tf.Period, tf.Interval)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, nil
	}

	series := downsample(bars, rate)
	hu.cache.Set(ctx, key, series, hu.historyTTL)
	return series, nil
}

// downsample は系列を最大maxSeriesPoints点に間引き、各点に変化量と
// 変化率を付与します。変化量は間引き前の系列でストライド分さかのぼった
// 点との差分です。最終観測点は必ず保持されます。
func downsample(bars []ProviderBar, rate float64) []entity.SeriesPoint {
	stride := len(bars) / maxSeriesPoints
	if stride < 1 {
		stride = 1
	}

	indices := make([]int, 0, maxSeriesPoints+2)
	for i := 0; i < len(bars); i += stride {
		indices = append(indices, i)
	}
	// 最終観測点が間引かれた場合は末尾に補います。
	if last := len(bars) - 1; last%stride != 0 {
		indices = append(indices, last)
	}

	series := make([]entity.SeriesPoint, len(indices))
	for i, idx := range indices {
		bar := bars[idx]
		point := entity.SeriesPoint{
			Time:  bar.Time,
			Price: round2(bar.Close * rate),
		}
		if idx >= stride {
			prev := bars[idx-stride].Close
			change := bar.Close - prev
			point.Change = round2(change * rate)
			if prev != 0 {
				point.PercentChange = round2(change / prev * 100)
			}
		}
		series[i] = point
	}
	return series
}
