package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"asset-guardian/pkg/utils"
)

const HeaderActor = "X-Actor"

// InjectActor кладет автора изменений (заголовок X-Actor) в контекст запроса.
func InjectActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := strings.TrimSpace(c.Request().Header.Get(HeaderActor))
			if actor == "" {
				actor = utils.DefaultActor
			}
			ctx := utils.WithActor(c.Request().Context(), actor)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
