// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stockevent_backend/internal/feature/quotes/catalog"
	"stockevent_backend/internal/feature/quotes/domain/entity"
	"stockevent_backend/internal/feature/quotes/transport/http/dto"
	"stockevent_backend/internal/feature/quotes/usecase"
)

// PricesUsecase は価格バッチ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	GetPrices(ctx context.Context, reqs []entity.SymbolRequest) []entity.PricePoint
}

// HistoryUsecase は履歴系列取得のユースケースインターフェースを定義します。
type HistoryUsecase interface {
	GetHistory(ctx context.Context, symbol string, kind entity.AssetKind, currency string) (entity.TimeframeSeries, error)
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
type MarketHandler struct {
	prices  PricesUsecase
	history HistoryUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(prices PricesUsecase, history HistoryUsecase) *MarketHandler {
	return &MarketHandler{prices: prices, history: history}
}

// ListCryptoHandler はカタログの1ページ分を指定通貨で価格付けして返します。
//
// エンドポイント例:
// GET /crypto/:currency?offset=0&limit=10
func (h *MarketHandler) ListCryptoHandler(c *gin.Context) {
	currency, ok := currencyParam(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	page := catalog.CryptoPage(offset, limit)
	if len(page) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no data found"})
		return
	}

	reqs := make([]entity.SymbolRequest, len(page))
	for i, info := range page {
		reqs[i] = entity.SymbolRequest{
			Symbol:   info.Symbol,
			Kind:     entity.KindCrypto,
			Currency: currency,
		}
	}

	points := h.prices.GetPrices(c.Request.Context(), reqs)

	out := make([]dto.CryptoListItem, len(page))
	for i, info := range page {
		out[i] = dto.CryptoListItem{
			Symbol:        info.Symbol,
			ID:            info.ID,
			Image:         info.Image,
			Price:         points[i].Price,
			MarketCap:     points[i].MarketCap,
			ChangePercent: points[i].ChangePercent,
		}
	}

	c.JSON(http.StatusOK, out)
}

// GetCryptoHistoryHandler は1銘柄の6タイムフレーム分の履歴系列を返します。
//
// エンドポイント例:
// GET /crypto/:currency/:symbol
func (h *MarketHandler) GetCryptoHistoryHandler(c *gin.Context) {
	currency, ok := currencyParam(c)
	if !ok {
		return
	}
	symbol := c.Param("symbol")

	series, err := h.history.GetHistory(c.Request.Context(), symbol, entity.KindCrypto, currency)
	if err != nil {
		if errors.Is(err, usecase.ErrNoHistoricalData) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no data found"})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, series)
}

// ListStocksHandler は株式カタログを返します。
//
// エンドポイント例:
// GET /stocks/symbols
func (h *MarketHandler) ListStocksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Stocks)
}

// GetStockQuoteHandler は1株式銘柄のUSD建てスナップショットを返します。
//
// エンドポイント例:
// GET /stocks/:symbol/quote
func (h *MarketHandler) GetStockQuoteHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	points := h.prices.GetPrices(c.Request.Context(), []entity.SymbolRequest{
		{Symbol: symbol, Kind: entity.KindStock, Currency: "USD"},
	})

	point := points[0]
	if !point.HasPrice() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no data found"})
		return
	}

	c.JSON(http.StatusOK, dto.StockQuoteResponse{
		Symbol:        point.Symbol,
		Price:         point.Price,
		MarketCap:     point.MarketCap,
		ChangePercent: point.ChangePercent,
		LogoURL:       point.LogoURL,
	})
}

// GetStockHistoryHandler は1株式銘柄のUSD建て履歴系列を返します。
//
// エンドポイント例:
// GET /stocks/:symbol/history
func (h *MarketHandler) GetStockHistoryHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	series, err := h.history.GetHistory(c.Request.Context(), symbol, entity.KindStock, "USD")
	if err != nil {
		if errors.Is(err, usecase.ErrNoHistoricalData) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no data found"})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, series)
}

// currencyParam は通貨パスパラメータを検証し大文字化して返します。
func currencyParam(c *gin.Context) (string, bool) {
	currency := strings.ToUpper(c.Param("currency"))
	if len(currency) != 3 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid currency"})
		return "", false
	}
	return currency, true
}
