// Package router assembles the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	alerthandler "stockevent_backend/internal/feature/alerts/transport/handler"
	authhandler "stockevent_backend/internal/feature/auth/transport/handler"
	markethandler "stockevent_backend/internal/feature/quotes/transport/handler"
	watchlisthandler "stockevent_backend/internal/feature/watchlist/transport/handler"
	jwtmw "stockevent_backend/internal/platform/jwt"
)

// NewRouter は全エンドポイントを登録したginエンジンを組み立てます。
func NewRouter(jwtSecret string, auth *authhandler.AuthHandler, market *markethandler.MarketHandler,
	watchlist *watchlisthandler.WatchlistHandler, alerts *alerthandler.AlertHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	authz := r.Group("/")
	authz.Use(jwtmw.AuthRequired(jwtSecret))
	{
		// マーケットデータ
		authz.GET("/crypto/:currency", market.ListCryptoHandler)
		authz.GET("/crypto/:currency/:symbol", market.GetCryptoHistoryHandler)
		authz.GET("/stocks/symbols", market.ListStocksHandler)
		authz.GET("/stocks/:symbol/quote", market.GetStockQuoteHandler)
		authz.GET("/stocks/:symbol/history", market.GetStockHistoryHandler)

		// ウォッチリストと保有
		authz.POST("/watchlist", watchlist.AddSymbolHandler)
		authz.GET("/watchlist/symbols", watchlist.ListSymbolsHandler)
		authz.GET("/watchlistid", watchlist.GetWatchlistIDHandler)
		authz.DELETE("/watchlist/:watchlist_id/:symbol", watchlist.RemoveSymbolHandler)
		authz.PUT("/watchlist/:symbol/holding", watchlist.UpdateHoldingHandler)
		authz.GET("/watchlist/:symbol/holding", watchlist.GetHoldingHandler)
		authz.GET("/totalvalue", watchlist.GetPortfolioValueHandler)
		authz.GET("/totalvalue-gbp", watchlist.GetPortfolioValueGBPHandler)

		// プライスアラート
		authz.GET("/alerts", alerts.ListAlertsHandler)
		authz.POST("/alerts", alerts.CreateAlertHandler)
		authz.POST("/alerts/check", alerts.CheckAlertsHandler)
	}

	return r
}
