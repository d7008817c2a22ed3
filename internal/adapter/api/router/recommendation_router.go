package router

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/adapter/api/handler"
	"sweaty/internal/adapter/api/middleware"
	"sweaty/internal/infrastructure/ratelimit"
)

const recommendAction = "ai_recommend"

func SetupRecommendationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	recommendationHandler := handler.GetRecommendationHandler()

	var chain []echo.MiddlewareFunc
	if authMiddleware != nil {
		chain = append(chain, authMiddleware.Optional)
	}
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter, recommendAction))
	}

	e.POST("/api/ai/recommend", recommendationHandler.Recommend, chain...)
}
