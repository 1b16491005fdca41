package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-guardian/pkg/contextkeys"
	"asset-guardian/pkg/utils"
)

func TestInjectLoggerAndActor(t *testing.T) {
	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(InjectLogger(zap.NewNop()))
	e.Use(InjectActor())

	var requestID, actor string
	var hasLogger bool
	e.GET("/api/assets", func(c echo.Context) error {
		requestID = utils.GetRequestIDFromCtx(c.Request().Context())
		actor = utils.GetActorFromCtx(c.Request().Context())
		_, hasLogger = c.Get(contextkeys.LoggerKey).(*zap.Logger)
		return c.NoContent(http.StatusOK)
	})

	t.Run("request id and actor from headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-100")
		req.Header.Set(HeaderActor, " maria.santos ")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-100", requestID)
		assert.Equal(t, "maria.santos", actor)
		assert.True(t, hasLogger)
	})

	t.Run("generated request id and default actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), requestID)
		assert.Equal(t, utils.DefaultActor, actor)
	})
}
