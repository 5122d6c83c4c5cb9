// Package handler はalertsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "stockevent_backend/internal/platform/jwt"

	"stockevent_backend/internal/feature/alerts/domain/entity"
	"stockevent_backend/internal/feature/alerts/transport/http/dto"
	"stockevent_backend/internal/feature/alerts/usecase"
)

// AlertsUsecase はアラート操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AlertsUsecase interface {
	Create(ctx context.Context, userID uint, symbol string, targetPrice float64) (*entity.UserAlert, error)
	List(ctx context.Context, userID uint) ([]entity.UserAlert, error)
	SweepOnce(ctx context.Context) error
}

// AlertHandler はプライスアラートのHTTPリクエストを処理します。
type AlertHandler struct {
	usecase AlertsUsecase
}

// NewAlertHandler は指定されたusecaseでAlertHandlerの新しいインスタンスを生成します。
func NewAlertHandler(u AlertsUsecase) *AlertHandler {
	return &AlertHandler{usecase: u}
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

// CreateAlertHandler は認証ユーザー宛てのプライスアラートを登録します。
//
// エンドポイント例:
// POST /alerts
func (h *AlertHandler) CreateAlertHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req dto.CreateAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	alert, err := h.usecase.Create(c.Request.Context(), userID, req.Symbol, req.TargetPrice)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlertExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "alert already exists"})
		case errors.Is(err, usecase.ErrInvalidTarget):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "target price must be positive"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not create alert"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromEntity(*alert))
}

// ListAlertsHandler は認証ユーザーの全アラートを返します。
//
// エンドポイント例:
// GET /alerts
func (h *AlertHandler) ListAlertsHandler(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	alerts, err := h.usecase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "could not load alerts"})
		return
	}

	out := make([]dto.AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = dto.FromEntity(a)
	}

	c.JSON(http.StatusOK, out)
}

// CheckAlertsHandler はアラートスイープを手動で1回実行します。
// 通常は定期実行に任せますが、動作確認用に残しています。
//
// エンドポイント例:
// POST /alerts/check
func (h *AlertHandler) CheckAlertsHandler(c *gin.Context) {
	if _, ok := userIDFrom(c); !ok {
		return
	}

	if err := h.usecase.SweepOnce(c.Request.Context()); err != nil {
		slog.Error("manual alert sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "price check failed"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "price check completed"})
}
