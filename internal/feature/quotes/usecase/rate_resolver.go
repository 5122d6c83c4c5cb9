package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stockevent_backend/internal/platform/cache"
	"stockevent_backend/internal/shared/retry"
)

// ErrRateUnavailable is returned when the provider has no usable rate
// for a currency pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

const rateKeyPrefix = "exchange_rate"

// RateResolver は為替レートをキャッシュ優先で解決します。
// ミス時はプロバイダの通貨ペア銘柄（例: USDGBP=X）をクォートします。
type RateResolver struct {
	market MarketDataClient
	cache  CacheStore
	ttl    time.Duration
	retry  func(ctx context.Context, name string, op func() error) error
}

// NewRateResolver はRateResolverの新しいインスタンスを生成します。
func NewRateResolver(market MarketDataClient, cacheStore CacheStore, ttl time.Duration) *RateResolver {
	return &RateResolver{market: market, cache: cacheStore, ttl: ttl, retry: retry.Do}
}

var _ RateSource = (*RateResolver)(nil)

// Rate はfromからtoへの換算レートを返します。
// 同一通貨は識別変換として常に1を返し、プロバイダには問い合わせません。
// クォートに使えるレートが含まれない場合も取得失敗とみなし、
// バックオフ付きで再試行してから諦めます。
func (r *RateResolver) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return 1, nil
	}

	pair := from + to + "=X"
	key := cache.Key(rateKeyPrefix, pair, "", "", "")

	var cached float64
	if r.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var rate float64
	err := r.retry(ctx, "resolve rate "+pair, func() error {
		quotes, err := r.market.FetchQuotes(ctx, []string{pair})
		if err != nil {
			// プロバイダクライアントが通信エラーを内部で再試行済みのため
			// ここで重ねてリトライしません。
			return retry.Permanent(fmt.Errorf("fetch rate %s: %w", pair, err))
		}

		q, ok := quotes[pair]
		if !ok {
			return fmt.Errorf("%w: %s", ErrRateUnavailable, pair)
		}

		// 当日のクォートがない場合は前日終値にフォールバックします。
		v := q.Price
		if v == nil {
			v = q.PreviousClose
		}
		if v == nil || *v == 0 {
			return fmt.Errorf("%w: %s", ErrRateUnavailable, pair)
		}

		rate = *v
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.cache.Set(ctx, key, rate, r.ttl)
	return rate, nil
}
