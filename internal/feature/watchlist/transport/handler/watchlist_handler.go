// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	jwtmw "stockevent_backend/internal/platform/jwt"

	quotesusecase "stockevent_backend/internal/feature/quotes/usecase"
	"stockevent_backend/internal/feature/watchlist/transport/http/dto"
	"stockevent_backend/internal/feature/watchlist/usecase"
)

// WatchlistUsecase はウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WatchlistUsecase interface {
	Add(ctx context.Context, userID uint, symbol, assetType string) error
	Symbols(ctx context.Context, userID uint) ([]usecase.PricedSymbol, error)
	WatchlistID(ctx context.Context, userID uint) (uint, error)
	RemoveSymbol(ctx context.Context, userID, watchlistID uint, symbol string) error
	UpdateHolding(ctx context.Context, userID uint, symbol string, shares float64) (usecase.HoldingDetail, error)
	HoldingDetail(ctx context.Context, userID uint, symbol string) (usecase.HoldingDetail, error)
	PortfolioValue(ctx context.Context, userID uint) (usecase.PortfolioValue, error)
	PortfolioValueGBP(ctx context.Context, userID uint) (usecase.PortfolioValue, error)
}

// WatchlistHandler はウォッチリストと保有のHTTPリクエストを処理します。
type WatchlistHandler struct {
	usecase WatchlistUsecase
}

// NewWatchlistHandler は指定されたusecaseでWatchlistHandlerの新しいインスタンスを生成します。
func NewWatchlistHandler(u WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{usecase: u}
}

// userIDFrom は認証ミドルウェアが設定したユーザーIDをコンテキストから取り出します。
func userIDFrom(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return 0, false
	}
	return id, true
}

// AddSymbolHandler は銘柄をウォッチリストへ追加します。
//
// エンドポイント例:
// POST /watchlist
func (h *WatchlistHandler) AddSymbolHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req dto.AddSymbolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.usecase.Add(c.Request.Context(), userID, req.Symbol, req.Type); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAssetType):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "type must be stocks or crypto"})
		case errors.Is(err, usecase.ErrAlreadyInWatchlist):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "symbol already in watchlist"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not add symbol"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "symbol added"})
}

// ListSymbolsHandler はウォッチリスト全銘柄を現在値付きで返します。
//
// エンドポイント例:
// GET /watchlist/symbols
func (h *WatchlistHandler) ListSymbolsHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	symbols, err := h.usecase.Symbols(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not load watchlist"})
		return
	}

	out := make([]dto.PricedSymbolResponse, len(symbols))
	for i, s := range symbols {
		out[i] = dto.PricedSymbolResponse{
			Symbol:        s.Symbol,
			Type:          s.Type,
			Price:         s.Price,
			ChangePercent: s.ChangePercent,
			LogoURL:       s.LogoURL,
		}
	}

	c.JSON(http.StatusOK, out)
}

// GetWatchlistIDHandler は呼び出しユーザーのウォッチリストIDを返します。
//
// エンドポイント例:
// GET /watchlistid
func (h *WatchlistHandler) GetWatchlistIDHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	id, err := h.usecase.WatchlistID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "watchlist is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not load watchlist"})
		return
	}

	c.JSON(http.StatusOK, dto.WatchlistIDResponse{WatchlistID: id})
}

// RemoveSymbolHandler は指定ウォッチリストから銘柄を削除します。
//
// エンドポイント例:
// DELETE /watchlist/:watchlist_id/:symbol
func (h *WatchlistHandler) RemoveSymbolHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	watchlistID, err := strconv.ParseUint(c.Param("watchlist_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid watchlist id"})
		return
	}

	err = h.usecase.RemoveSymbol(c.Request.Context(), userID, uint(watchlistID), c.Param("symbol"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWatchlistNotFound), errors.Is(err, usecase.ErrSymbolNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "symbol not found in watchlist"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not remove symbol"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "symbol removed"})
}

// UpdateHoldingHandler は保有株数を更新し、評価済み保有を返します。
//
// エンドポイント例:
// PUT /watchlist/:symbol/holding
func (h *WatchlistHandler) UpdateHoldingHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.usecase.UpdateHolding(c.Request.Context(), userID, c.Param("symbol"), req.Shares)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "symbol not found in watchlist"})
		case errors.Is(err, usecase.ErrPriceUnavailable):
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "current price unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not update holding"})
		}
		return
	}

	c.JSON(http.StatusOK, holdingResponse(detail))
}

// GetHoldingHandler は1保有の評価済み詳細を返します。
//
// エンドポイント例:
// GET /watchlist/:symbol/holding
func (h *WatchlistHandler) GetHoldingHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	detail, err := h.usecase.HoldingDetail(c.Request.Context(), userID, c.Param("symbol"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWatchlistNotFound), errors.Is(err, usecase.ErrHoldingNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "holding not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not load holding"})
		}
		return
	}

	c.JSON(http.StatusOK, holdingResponse(detail))
}

// GetPortfolioValueHandler は全保有のUSD建て評価合計を返します。
//
// エンドポイント例:
// GET /totalvalue
func (h *WatchlistHandler) GetPortfolioValueHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	value, err := h.usecase.PortfolioValue(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not compute portfolio value"})
		return
	}

	c.JSON(http.StatusOK, portfolioResponse(value))
}

// GetPortfolioValueGBPHandler は全保有のGBP建て評価合計を返します。
// 為替レートが解決できない場合は502を返します。
//
// エンドポイント例:
// GET /totalvalue-gbp
func (h *WatchlistHandler) GetPortfolioValueGBPHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	value, err := h.usecase.PortfolioValueGBP(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, quotesusecase.ErrRateUnavailable) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "exchange rate unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not compute portfolio value"})
		return
	}

	c.JSON(http.StatusOK, portfolioResponse(value))
}

func holdingResponse(d usecase.HoldingDetail) dto.HoldingResponse {
	return dto.HoldingResponse{
		Symbol:       d.Symbol,
		Shares:       d.Shares,
		AverageCost:  d.AverageCost,
		CurrentPrice: d.CurrentPrice,
		PnL:          d.PnL,
		TotalValue:   d.TotalValue,
	}
}

func portfolioResponse(v usecase.PortfolioValue) dto.PortfolioValueResponse {
	return dto.PortfolioValueResponse{
		TotalValue: v.TotalValue,
		Currency:   v.Currency,
		Partial:    v.Partial,
	}
}
