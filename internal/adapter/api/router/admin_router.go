package router

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/adapter/api/handler"
	"sweaty/internal/adapter/api/middleware"
	"sweaty/pkg/logger"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	if adminHandler == nil || authMiddleware == nil || adminMiddleware == nil {
		logger.Warn("Firebase is not configured, admin routes are disabled")
		return
	}

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate) // verify token first
	admin.Use(adminMiddleware.AdminOnly)   // then the admin claim

	admin.POST("/cache-curated-games", adminHandler.CacheCuratedGames)
}
