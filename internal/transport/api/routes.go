package api

import (
	"github.com/labstack/echo/v4"

	repoInterface "dispatch-board/internal/repository/interface"
	"dispatch-board/internal/service/session"
	"dispatch-board/internal/transport/middleware"
)

// SetupRoutes wires the JSON API under the given group.
func SetupRoutes(
	e *echo.Group,
	sess *session.Store,
	audits repoInterface.LoadAuditRepository,
	authMiddleware *middleware.AuthMiddleware,
	jwtSecret string,
	operatorPasswordHash string,
) {
	authAPI := NewAuthAPI(jwtSecret, operatorPasswordHash)
	e.POST("/login", authAPI.Login)

	protected := e.Group("")
	protected.Use(authMiddleware.RequireAuth)

	boardAPI := NewBoardAPI(sess, audits)
	protected.GET("/board", boardAPI.Board)
	protected.GET("/stats", boardAPI.Stats)
	protected.PUT("/filter", boardAPI.SetFilter)
	protected.PUT("/search", boardAPI.SetSearch)
	protected.POST("/refresh", boardAPI.Refresh)
	protected.GET("/loads", boardAPI.Loads)
}
