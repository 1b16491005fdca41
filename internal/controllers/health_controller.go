package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse - ответ /health. Сервис жив, даже если база недоступна.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthController struct {
	ping func(ctx context.Context) bool
	now  func() time.Time
}

func NewHealthController(ping func(ctx context.Context) bool) *HealthController {
	return &HealthController{ping: ping, now: time.Now}
}

func (h *HealthController) Check(c echo.Context) error {
	database := DatabaseDisconnected
	if h.ping != nil && h.ping(c.Request().Context()) {
		database = DatabaseConnected
	}
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: h.now().UTC(),
	})
}
