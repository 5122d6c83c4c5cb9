// Package usecase はプライスアラートのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stockevent_backend/internal/feature/alerts/domain/entity"
	quotesentity "stockevent_backend/internal/feature/quotes/domain/entity"
	"stockevent_backend/internal/shared/ratelimiter"
)

// AlertRepository はアラートの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AlertRepository interface {
	// Create は新しいアラートを永続化します。重複時はErrAlertExistsを返します。
	Create(ctx context.Context, alert *entity.UserAlert) error
	// ListByEmail は指定メールアドレスの全アラートを返します。
	ListByEmail(ctx context.Context, email string) ([]entity.UserAlert, error)
	// ListActive は有効な全アラートを返します。
	ListActive(ctx context.Context) ([]entity.UserAlert, error)
	// Deactivate はアラートを無効化します。
	Deactivate(ctx context.Context, id uint) error
}

// EmailSource は認証ユーザーIDからメールアドレスを解決します。
type EmailSource interface {
	EmailByID(ctx context.Context, userID uint) (string, error)
}

// PriceEngine は価格バッチ取得エンジンを抽象化します。
type PriceEngine interface {
	GetPrices(ctx context.Context, reqs []quotesentity.SymbolRequest) []quotesentity.PricePoint
}

// MailSender はアラートメールの送信を抽象化します。
type MailSender interface {
	Send(to, subject, body string) error
}

// alertsUsecase はアラートの登録・一覧・スイープを実装します。
type alertsUsecase struct {
	alerts      AlertRepository
	emails      EmailSource
	prices      PriceEngine
	mail        MailSender
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewAlertsUsecase はalertsUsecaseの新しいインスタンスを生成します。
func NewAlertsUsecase(alerts AlertRepository, emails EmailSource, prices PriceEngine, mail MailSender, rateLimiter ratelimiter.RateLimiterInterface) *alertsUsecase {
	return &alertsUsecase{alerts: alerts, emails: emails, prices: prices, mail: mail, rateLimiter: rateLimiter}
}

// Create は認証ユーザーのメールアドレス宛てのアラートを登録します。
func (u *alertsUsecase) Create(ctx context.Context, userID uint, symbol string, targetPrice float64) (*entity.UserAlert, error) {
	if targetPrice <= 0 {
		return nil, ErrInvalidTarget
	}

	email, err := u.emails.EmailByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve alert owner: %w", err)
	}

	alert := &entity.UserAlert{
		Email:       email,
		Symbol:      strings.ToUpper(symbol),
		TargetPrice: targetPrice,
		IsActive:    true,
	}
	if err := u.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// List は認証ユーザーの全アラートを返します。
func (u *alertsUsecase) List(ctx context.Context, userID uint) ([]entity.UserAlert, error) {
	email, err := u.emails.EmailByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve alert owner: %w", err)
	}
	return u.alerts.ListByEmail(ctx, email)
}

// SweepOnce は有効な全アラートを1回走査します。現在値が目標価格以上の
// アラートはメール送信後に無効化されます。価格が解決できなかった銘柄や
// メール送信に失敗したアラートは有効なまま残り、次回のスイープで再試行
// されます。
func (u *alertsUsecase) SweepOnce(ctx context.Context) error {
	alerts, err := u.alerts.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active alerts: %w", err)
	}
	if len(alerts) == 0 {
		return nil
	}

	reqs := make([]quotesentity.SymbolRequest, len(alerts))
	for i, a := range alerts {
		reqs[i] = quotesentity.SymbolRequest{
			Symbol:   a.Symbol,
			Kind:     quotesentity.KindStock,
			Currency: "USD",
		}
	}
	// プロバイダへのバッチ呼び出し頻度を抑える
	u.rateLimiter.WaitIfNeeded()
	points := u.prices.GetPrices(ctx, reqs)

	for i, alert := range alerts {
		price, ok := points[i].Price.Float64()
		if !ok {
			slog.Warn("alert sweep: price unavailable", "symbol", alert.Symbol)
			continue
		}
		if price < alert.TargetPrice {
			continue
		}

		subject := fmt.Sprintf("%s Alert!", alert.Symbol)
		body := fmt.Sprintf("%s has reached $%g!", alert.Symbol, alert.TargetPrice)
		if err := u.mail.Send(alert.Email, subject, body); err != nil {
			slog.Error("alert sweep: mail delivery failed", "symbol", alert.Symbol, "error", err)
			continue
		}

		if err := u.alerts.Deactivate(ctx, alert.ID); err != nil {
			slog.Error("alert sweep: deactivate failed", "id", alert.ID, "error", err)
		}
	}
	return nil
}
