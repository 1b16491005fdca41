// pkg/middleware/logger.go

package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/pkg/contextkeys"
	"asset-guardian/pkg/utils"
)

// InjectLogger - мидлвэр для добавления логгера запроса в контекст.
// Ставится после middleware.RequestID, иначе request_id будет пустым.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLogger := logger.With(
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
			)

			c.SetRequest(c.Request().WithContext(utils.WithRequestID(c.Request().Context(), requestID)))
			c.Set(contextkeys.LoggerKey, reqLogger)
			return next(c)
		}
	}
}

// LoggerFromContext возвращает логгер запроса или fallback.
func LoggerFromContext(c echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(contextkeys.LoggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return fallback
}
