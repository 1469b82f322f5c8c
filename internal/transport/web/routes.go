package web

import (
	"github.com/labstack/echo/v4"

	"dispatch-board/internal/service/session"
	"dispatch-board/internal/transport/middleware"
)

// SetupRoutes wires the web interface.
func SetupRoutes(e *echo.Echo, sess *session.Store, authMiddleware *middleware.AuthMiddleware) {
	handler := NewHandler(sess)

	protected := e.Group("")
	protected.Use(authMiddleware.RequireAuth)
	{
		protected.GET("/", handler.Dashboard)
		protected.POST("/refresh", handler.RefreshAction)
	}
}
