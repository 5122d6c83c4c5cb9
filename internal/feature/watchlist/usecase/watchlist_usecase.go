package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	quotesentity "stockevent_backend/internal/feature/quotes/domain/entity"
	"stockevent_backend/internal/feature/watchlist/domain/entity"
)

// WatchlistRepository はウォッチリストエントリの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type WatchlistRepository interface {
	// Create は新しいエントリを永続化します。重複時はErrAlreadyInWatchlistを返します。
	Create(ctx context.Context, w *entity.Watchlist) error
	// FindByUserAndSymbol はユーザーと銘柄でエントリを取得します。
	FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.Watchlist, error)
	// ListByUser はユーザーの全エントリを返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Watchlist, error)
	// FirstIDByUser はユーザーの最初のウォッチリストIDを返します。
	FirstIDByUser(ctx context.Context, userID uint) (uint, error)
	// DeleteSymbol は指定ウォッチリストから銘柄を削除します。
	DeleteSymbol(ctx context.Context, watchlistID, userID uint, symbol string) error
}

// HoldingRepository は保有ポジションの永続化層を抽象化します。
type HoldingRepository interface {
	// FindByWatchlistID はウォッチリストIDで保有を取得します。
	FindByWatchlistID(ctx context.Context, watchlistID uint) (*entity.Holding, error)
	// Save は保有を作成または更新します。
	Save(ctx context.Context, h *entity.Holding) error
	// ListPositionsByUser はユーザーの全保有を銘柄付きで返します。
	ListPositionsByUser(ctx context.Context, userID uint) ([]entity.Position, error)
}

// PriceEngine は価格バッチ取得エンジンを抽象化します。
type PriceEngine interface {
	GetPrices(ctx context.Context, reqs []quotesentity.SymbolRequest) []quotesentity.PricePoint
}

// RateSource は通貨ペアの為替レートを解決します。
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// PricedSymbol はウォッチリスト1行の価格付きビューです。
type PricedSymbol struct {
	Symbol        string
	Type          string
	Price         quotesentity.Amount
	ChangePercent quotesentity.Amount
	LogoURL       string
}

// HoldingDetail は保有1件の評価済みビューです。
// 現在値が取得できない場合、評価系フィールドはセンチネルになります。
type HoldingDetail struct {
	Symbol       string
	Shares       float64
	AverageCost  float64
	CurrentPrice quotesentity.Amount
	PnL          quotesentity.Amount
	TotalValue   quotesentity.Amount
}

// PortfolioValue は全保有資産の評価合計です。
// Partialは一部銘柄の価格が取得できず合計から除外されたことを示します。
type PortfolioValue struct {
	TotalValue float64
	Currency   string
	Partial    bool
}

// watchlistUsecase はウォッチリストと保有のビジネスロジックを実装します。
type watchlistUsecase struct {
	watchlists WatchlistRepository
	holdings   HoldingRepository
	prices     PriceEngine
	rates      RateSource
}

// NewWatchlistUsecase はwatchlistUsecaseの新しいインスタンスを生成します。
func NewWatchlistUsecase(watchlists WatchlistRepository, holdings HoldingRepository, prices PriceEngine, rates RateSource) *watchlistUsecase {
	return &watchlistUsecase{watchlists: watchlists, holdings: holdings, prices: prices, rates: rates}
}

// kindOf はウォッチリストの資産種別を価格エンジンの種別へ写します。
func kindOf(assetType string) quotesentity.AssetKind {
	if assetType == entity.TypeStocks {
		return quotesentity.KindStock
	}
	return quotesentity.KindCrypto
}

// Add は銘柄をユーザーのウォッチリストへ追加します。
func (u *watchlistUsecase) Add(ctx context.Context, userID uint, symbol, assetType string) error {
	if assetType != entity.TypeStocks && assetType != entity.TypeCrypto {
		return fmt.Errorf("%w: %s", ErrInvalidAssetType, assetType)
	}
	return u.watchlists.Create(ctx, &entity.Watchlist{
		UserID: userID,
		Symbol: strings.ToUpper(symbol),
		Type:   assetType,
	})
}

// Symbols はユーザーの全エントリを現在値付きで返します。
// 価格が解決できなかった銘柄もセンチネル値でリストに残ります。
func (u *watchlistUsecase) Symbols(ctx context.Context, userID uint) ([]PricedSymbol, error) {
	entries, err := u.watchlists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	reqs := make([]quotesentity.SymbolRequest, len(entries))
	for i, e := range entries {
		reqs[i] = quotesentity.SymbolRequest{
			Symbol:   e.Symbol,
			Kind:     kindOf(e.Type),
			Currency: "USD",
		}
	}
	points := u.prices.GetPrices(ctx, reqs)

	out := make([]PricedSymbol, len(entries))
	for i, e := range entries {
		out[i] = PricedSymbol{
			Symbol:        e.Symbol,
			Type:          e.Type,
			Price:         points[i].Price,
			ChangePercent: points[i].ChangePercent,
			LogoURL:       points[i].LogoURL,
		}
	}
	return out, nil
}

// WatchlistID はユーザーの最初のウォッチリストIDを返します。
func (u *watchlistUsecase) WatchlistID(ctx context.Context, userID uint) (uint, error) {
	return u.watchlists.FirstIDByUser(ctx, userID)
}

// RemoveSymbol は指定ウォッチリストから銘柄を削除します。
func (u *watchlistUsecase) RemoveSymbol(ctx context.Context, userID, watchlistID uint, symbol string) error {
	return u.watchlists.DeleteSymbol(ctx, watchlistID, userID, strings.ToUpper(symbol))
}

// currentPrice は1銘柄の現在値をエンジン経由で取得します。
func (u *watchlistUsecase) currentPrice(ctx context.Context, symbol, assetType string) (float64, bool) {
	points := u.prices.GetPrices(ctx, []quotesentity.SymbolRequest{{
		Symbol:   symbol,
		Kind:     kindOf(assetType),
		Currency: "USD",
	}})
	return points[0].Price.Float64()
}

// UpdateHolding は保有株数を更新し、加重平均取得単価を維持します。
// 株数が増えた分だけ現在値で買い増したものとして平均単価を更新します。
// 新規保有は現在値を取得単価として作成されます。
func (u *watchlistUsecase) UpdateHolding(ctx context.Context, userID uint, symbol string, shares float64) (HoldingDetail, error) {
	symbol = strings.ToUpper(symbol)

	watchlist, err := u.watchlists.FindByUserAndSymbol(ctx, userID, symbol)
	if err != nil {
		return HoldingDetail{}, err
	}

	price, ok := u.currentPrice(ctx, watchlist.Symbol, watchlist.Type)
	if !ok {
		// 平均単価の計算に現在値が必須のため、ここでは縮退できません。
		return HoldingDetail{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}

	holding, err := u.holdings.FindByWatchlistID(ctx, watchlist.ID)
	switch {
	case err == nil:
		added := shares - holding.Shares
		if added > 0 {
			totalCost := holding.Shares*holding.AverageCost + added*price
			holding.Shares = shares
			holding.AverageCost = totalCost / shares
		}
	case errors.Is(err, ErrHoldingNotFound):
		holding = &entity.Holding{
			WatchlistID: watchlist.ID,
			Shares:      shares,
			AverageCost: price,
		}
	default:
		return HoldingDetail{}, err
	}

	if err := u.holdings.Save(ctx, holding); err != nil {
		return HoldingDetail{}, err
	}

	return valuedDetail(symbol, holding, quotesentity.Num(price)), nil
}

// HoldingDetail は1保有の評価済み詳細を返します。
func (u *watchlistUsecase) HoldingDetail(ctx context.Context, userID uint, symbol string) (HoldingDetail, error) {
	symbol = strings.ToUpper(symbol)

	watchlist, err := u.watchlists.FindByUserAndSymbol(ctx, userID, symbol)
	if err != nil {
		return HoldingDetail{}, err
	}

	holding, err := u.holdings.FindByWatchlistID(ctx, watchlist.ID)
	if err != nil {
		return HoldingDetail{}, err
	}

	if price, ok := u.currentPrice(ctx, watchlist.Symbol, watchlist.Type); ok {
		return valuedDetail(symbol, holding, quotesentity.Num(price)), nil
	}

	// 価格が取得できなくても保有自体は返し、評価系のみセンチネルにします。
	return valuedDetail(symbol, holding, quotesentity.Unavailable()), nil
}

// valuedDetail は保有と現在値から評価済みビューを組み立てます。
func valuedDetail(symbol string, holding *entity.Holding, price quotesentity.Amount) HoldingDetail {
	detail := HoldingDetail{
		Symbol:       symbol,
		Shares:       holding.Shares,
		AverageCost:  holding.AverageCost,
		CurrentPrice: price,
		PnL:          quotesentity.Unavailable(),
		TotalValue:   quotesentity.Unavailable(),
	}
	if v, ok := price.Float64(); ok {
		detail.PnL = quotesentity.Num((v - holding.AverageCost) * holding.Shares)
		detail.TotalValue = quotesentity.Num(v * holding.Shares)
	}
	return detail
}

// PortfolioValue は全保有のUSD建て評価合計を返します。
// 価格を解決できなかった銘柄は合計から除外され、Partialが立ちます。
func (u *watchlistUsecase) PortfolioValue(ctx context.Context, userID uint) (PortfolioValue, error) {
	positions, err := u.holdings.ListPositionsByUser(ctx, userID)
	if err != nil {
		return PortfolioValue{}, err
	}

	reqs := make([]quotesentity.SymbolRequest, len(positions))
	for i, p := range positions {
		reqs[i] = quotesentity.SymbolRequest{
			Symbol:   p.Symbol,
			Kind:     kindOf(p.Type),
			Currency: "USD",
		}
	}
	points := u.prices.GetPrices(ctx, reqs)

	value := PortfolioValue{Currency: "USD"}
	for i, p := range positions {
		price, ok := points[i].Price.Float64()
		if !ok {
			value.Partial = true
			continue
		}
		value.TotalValue += p.Shares * price
	}
	return value, nil
}

// PortfolioValueGBP は評価合計をGBPに換算して返します。
// レートが解決できない場合はエラーです。
func (u *watchlistUsecase) PortfolioValueGBP(ctx context.Context, userID uint) (PortfolioValue, error) {
	usd, err := u.PortfolioValue(ctx, userID)
	if err != nil {
		return PortfolioValue{}, err
	}

	rate, err := u.rates.Rate(ctx, "USD", "GBP")
	if err != nil {
		return PortfolioValue{}, fmt.Errorf("convert portfolio to GBP: %w", err)
	}

	return PortfolioValue{
		TotalValue: usd.TotalValue * rate,
		Currency:   "GBP",
		Partial:    usd.Partial,
	}, nil
}
