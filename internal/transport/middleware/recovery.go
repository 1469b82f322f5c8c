package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware turns panics into 500 responses.
func RecoveryMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("stack", string(debug.Stack())).
					Str("path", c.Request().URL.Path).
					Msg("panic recovered")

				c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}
		}()

		return next(c)
	}
}

// Recovery returns the recovery middleware.
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RecoveryMiddleware(next)
	}
}
