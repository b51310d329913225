// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/cache"
	"task-management-api/internal/database"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler 健康檢查（公開端點）
// @Summary     Health check
// @Description Reports service liveness and verifies database and cache connectivity
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("database unhealthy"))
		}
		if err := cch.Set(ctx, "health", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("cache unhealthy"))
		}
		return c.JSON(http.StatusOK, api.OKMessage(
			"Task Management API is running",
			HealthResponse{Timestamp: time.Now().UTC()},
		))
	}
}
