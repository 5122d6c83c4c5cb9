package main

import (
	"log"
	"time"

	"stockevent_backend/internal/app/di"
	"stockevent_backend/internal/app/router"
	alertadapters "stockevent_backend/internal/feature/alerts/adapters"
	alerthandler "stockevent_backend/internal/feature/alerts/transport/handler"
	alertusecase "stockevent_backend/internal/feature/alerts/usecase"
	authadapters "stockevent_backend/internal/feature/auth/adapters"
	authhandler "stockevent_backend/internal/feature/auth/transport/handler"
	authusecase "stockevent_backend/internal/feature/auth/usecase"
	markethandler "stockevent_backend/internal/feature/quotes/transport/handler"
	quotesusecase "stockevent_backend/internal/feature/quotes/usecase"
	watchlistadapters "stockevent_backend/internal/feature/watchlist/adapters"
	watchlisthandler "stockevent_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "stockevent_backend/internal/feature/watchlist/usecase"
	"stockevent_backend/internal/platform/config"
	platformdb "stockevent_backend/internal/platform/db"
	jwtmw "stockevent_backend/internal/platform/jwt"
	"stockevent_backend/internal/platform/mail"
	"stockevent_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	// db
	db, err := platformdb.Open(cfg)
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	// キャッシュ（Redis不達時はミスに縮退）
	store := di.NewCacheStore(cfg)

	// マーケットデータプロバイダ
	market := di.NewMarketData(cfg)
	rates := quotesusecase.NewRateResolver(market, store, cfg.CacheTTLMedium)
	pricesUC := quotesusecase.NewQuotesUsecase(market, store, rates, cfg.CacheTTLShort)
	historyUC := quotesusecase.NewHistoryUsecase(market, store, rates, cfg.CacheTTLLong)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	watchlistRepo := watchlistadapters.NewWatchlistPostgres(db)
	holdingRepo := watchlistadapters.NewHoldingPostgres(db)
	alertRepo := alertadapters.NewAlertPostgres(db)
	emailSource := alertadapters.NewUserEmailPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration))
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, holdingRepo, pricesUC, rates)
	alertLimiter := ratelimiter.NewRateLimiter(8, time.Minute)
	alertUC := alertusecase.NewAlertsUsecase(alertRepo, emailSource, pricesUC, mail.NewSender(cfg), alertLimiter)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	marketH := markethandler.NewMarketHandler(pricesUC, historyUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)
	alertH := alerthandler.NewAlertHandler(alertUC)

	// ルータ生成
	r := router.NewRouter(cfg.JWTSecret, authH, marketH, watchlistH, alertH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
