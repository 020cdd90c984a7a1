package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// RequireSession guards routes that hit the bearer-authenticated remote
// API. Without an active session the remote call would fail anyway; reject
// early with a consistent 401.
func RequireSession(session ports.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}
