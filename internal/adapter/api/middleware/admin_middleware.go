package middleware

import (
	"github.com/labstack/echo/v4"

	"sweaty/pkg/errors"
	"sweaty/pkg/response"
)

// AdminMiddleware must run after AuthMiddleware.Authenticate.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if !identity.Admin {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
