package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sweaty/internal/infrastructure/metrics"
	"sweaty/internal/infrastructure/ratelimit"
	"sweaty/pkg/errors"
	"sweaty/pkg/logger"
	"sweaty/pkg/response"
)

// RateLimit limits action per caller: the Firebase uid when an identity is
// attached, the client IP otherwise.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if identity, ok := IdentityFrom(c); ok {
				key = "uid:" + identity.UID
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				metrics.RateLimited.WithLabelValues(action).Inc()
				logger.Warn("RATE LIMIT: blocked %s for %s (retry in %v)", action, key, wait.Round(time.Second))

				retryAfter := int(math.Ceil(wait.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, try again later"))
			}

			return next(c)
		}
	}
}
