package router

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/adapter/api/middleware"
	"sweaty/internal/infrastructure/ratelimit"
)

// Setup registers every route. authMiddleware and adminMiddleware may be nil
// when Firebase is not configured; admin routes are then not registered.
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, aiLimiter *ratelimit.RateLimiter) {
	SetupHealthRouter(e)
	SetupGameRouter(e)
	SetupRecommendationRouter(e, authMiddleware, aiLimiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
