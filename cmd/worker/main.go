// Command worker runs the periodic price-alert sweep.
// It shares the batched price engine with the API server, so each sweep
// costs at most a couple of provider calls regardless of alert count.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"stockevent_backend/internal/app/di"
	alertadapters "stockevent_backend/internal/feature/alerts/adapters"
	alertusecase "stockevent_backend/internal/feature/alerts/usecase"
	quotesusecase "stockevent_backend/internal/feature/quotes/usecase"
	"stockevent_backend/internal/platform/config"
	platformdb "stockevent_backend/internal/platform/db"
	"stockevent_backend/internal/platform/mail"
	"stockevent_backend/internal/shared/ratelimiter"
)

const sweepTimeout = 2 * time.Minute

func main() {
	cfg := config.Load()

	db, err := platformdb.Open(cfg)
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	store := di.NewCacheStore(cfg)
	market := di.NewMarketData(cfg)
	rates := quotesusecase.NewRateResolver(market, store, cfg.CacheTTLMedium)
	pricesUC := quotesusecase.NewQuotesUsecase(market, store, rates, cfg.CacheTTLShort)

	alertRepo := alertadapters.NewAlertPostgres(db)
	emailSource := alertadapters.NewUserEmailPostgres(db)
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	alertUC := alertusecase.NewAlertsUsecase(alertRepo, emailSource, pricesUC, mail.NewSender(cfg), limiter)

	c := cron.New()
	_, err = c.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if err := alertUC.SweepOnce(ctx); err != nil {
			slog.Error("alert sweep failed", "error", err)
			return
		}
		slog.Info("alert sweep completed")
	})
	if err != nil {
		log.Fatal("failed to schedule alert sweep:", err)
	}

	c.Start()
	slog.Info("alert worker started", "schedule", "*/5 * * * *")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// 実行中のスイープを待ってから終了する
	<-c.Stop().Done()
	slog.Info("alert worker stopped")
}
