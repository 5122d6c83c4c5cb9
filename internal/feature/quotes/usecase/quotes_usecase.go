package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"stockevent_backend/internal/feature/quotes/catalog"
	"stockevent_backend/internal/feature/quotes/domain/entity"
	"stockevent_backend/internal/platform/cache"
)

const priceKeyPrefix = "current_price"

// quotesUsecase は複数銘柄の現在値をバッチ取得するユースケースを定義します。
type quotesUsecase struct {
	market   MarketDataClient
	cache    CacheStore
	rates    RateSource
	priceTTL time.Duration
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(market MarketDataClient, cacheStore CacheStore, rates RateSource, priceTTL time.Duration) *quotesUsecase {
	return &quotesUsecase{market: market, cache: cacheStore, rates: rates, priceTTL: priceTTL}
}

// pendingQuote はキャッシュミスした1リクエストの解決待ち状態です。
type pendingQuote struct {
	index          int
	req            entity.SymbolRequest
	providerSymbol string
}

// GetPrices はリクエストされた全銘柄の現在値スナップショットを返します。
// 出力は入力と同数・同順で、エラーは返しません。解決できなかった銘柄は
// センチネル値で埋められます（センチネルはキャッシュされません）。
// プロバイダ呼び出しはキャッシュミス分を種別ごとにまとめ、最大2回です。
func (qu *quotesUsecase) GetPrices(ctx context.Context, reqs []entity.SymbolRequest) []entity.PricePoint {
	results := make([]entity.PricePoint, len(reqs))

	// フェーズ1: キャッシュ照会。ヒットした銘柄は確定します。
	var pending []pendingQuote
	for i, req := range reqs {
		key := qu.cacheKey(req)
		var cached entity.PricePoint
		if qu.cache.Get(ctx, key, &cached) {
			results[i] = cached
			continue
		}
		pending = append(pending, pendingQuote{
			index:          i,
			req:            req,
			providerSymbol: providerSymbol(req),
		})
	}
	if len(pending) == 0 {
		return results
	}

	// フェーズ2: ミス分を種別ごとにバッチし、プロバイダへ問い合わせます。
	byKind := map[entity.AssetKind][]pendingQuote{}
	for _, p := range pending {
		byKind[p.req.Kind] = append(byKind[p.req.Kind], p)
	}

	for kind, group := range byKind {
		symbols := make([]string, 0, len(group))
		seen := map[string]bool{}
		for _, p := range group {
			if !seen[p.providerSymbol] {
				seen[p.providerSymbol] = true
				symbols = append(symbols, p.providerSymbol)
			}
		}

		quotes, err := qu.market.FetchQuotes(ctx, symbols)
		if err != nil {
			slog.Warn("price fetch failed, filling sentinels",
				"kind", kind, "symbols", len(symbols), "error", err)
			for _, p := range group {
				results[p.index] = sentinelPoint(p.req)
			}
			continue
		}

		// 株式の非USD通貨はバッチ内でレートを1回だけ解決し共有します。
		rateByCurrency := qu.resolveRates(ctx, kind, group)

		for _, p := range group {
			results[p.index] = qu.reconcile(ctx, p, quotes, rateByCurrency)
		}
	}

	return results
}

// resolveRates はグループ内の株式リクエストが必要とする通貨レートを集めます。
// 解決に失敗した通貨はマップに載らず、該当銘柄はセンチネルになります。
func (qu *quotesUsecase) resolveRates(ctx context.Context, kind entity.AssetKind, group []pendingQuote) map[string]float64 {
	rates := map[string]float64{}
	if kind != entity.KindStock {
		return rates
	}
	for _, p := range group {
		currency := strings.ToUpper(p.req.Currency)
		if currency == "" || currency == "USD" {
			continue
		}
		if _, done := rates[currency]; done {
			continue
		}
		rate, err := qu.rates.Rate(ctx, "USD", currency)
		if err != nil {
			slog.Warn("rate resolution failed", "currency", currency, "error", err)
			continue
		}
		rates[currency] = rate
	}
	return rates
}

// reconcile は1リクエストをプロバイダ応答と突き合わせて確定します。
func (qu *quotesUsecase) reconcile(ctx context.Context, p pendingQuote, quotes map[string]ProviderQuote, rates map[string]float64) entity.PricePoint {
	q, ok := quotes[p.providerSymbol]
	if !ok || q.Price == nil {
		return sentinelPoint(p.req)
	}

	rate := 1.0
	if p.req.Kind == entity.KindStock {
		currency := strings.ToUpper(p.req.Currency)
		if currency != "" && currency != "USD" {
			r, ok := rates[currency]
			if !ok {
				return sentinelPoint(p.req)
			}
			rate = r
		}
	}

	point := entity.PricePoint{
		Symbol:        strings.ToUpper(p.req.Symbol),
		Price:         entity.Num(round2(*q.Price * rate)),
		MarketCap:     entity.Unavailable(),
		ChangePercent: entity.Unavailable(),
		LogoURL:       logoFor(p.req),
	}
	if q.MarketCap != nil {
		point.MarketCap = entity.Num(round2(*q.MarketCap * rate))
	}
	if q.ChangePercent != nil {
		point.ChangePercent = entity.Num(round2(*q.ChangePercent))
	}

	qu.cache.Set(ctx, qu.cacheKey(p.req), point, qu.priceTTL)
	return point
}

// cacheKey は通貨込みの価格キャッシュキーを生成します。
func (qu *quotesUsecase) cacheKey(req entity.SymbolRequest) string {
	return cache.Key(priceKeyPrefix, req.Symbol, req.Currency, "", "")
}

// providerSymbol はリクエストをプロバイダの銘柄表記へ変換します。
// 暗号資産はネイティブ通貨ペア（BTC-GBP）でクォートされます。
func providerSymbol(req entity.SymbolRequest) string {
	symbol := strings.ToUpper(req.Symbol)
	if req.Kind == entity.KindCrypto {
		currency := strings.ToUpper(req.Currency)
		if currency == "" {
			currency = "USD"
		}
		return symbol + "-" + currency
	}
	return symbol
}

// sentinelPoint は解決不能な銘柄のプレースホルダを返します。
func sentinelPoint(req entity.SymbolRequest) entity.PricePoint {
	return entity.PricePoint{
		Symbol:        strings.ToUpper(req.Symbol),
		Price:         entity.Unavailable(),
		MarketCap:     entity.Unavailable(),
		ChangePercent: entity.Unavailable(),
		LogoURL:       logoFor(req),
	}
}

func logoFor(req entity.SymbolRequest) string {
	if req.Kind == entity.KindCrypto {
		return catalog.CryptoImage(req.Symbol)
	}
	return catalog.StockLogo(req.Symbol)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
