package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware logs every request with method, path, status and latency.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		logEvent := log.Info()
		if err != nil {
			logEvent = log.Error().Err(err)
		}

		logEvent.Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Str("ip", c.RealIP()).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}

// RequestLogger returns the logging middleware.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return LoggerMiddleware(next)
	}
}
