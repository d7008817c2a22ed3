package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"sweaty/internal/domain/entity"
	"sweaty/pkg/errors"
	"sweaty/pkg/response"
)

const identityKey = "identity"

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set("uid", identity.UID)
		c.Set(identityKey, identity)

		return next(c)
	}
}

// Optional attaches the caller's identity when a valid bearer token is sent
// and lets every request through.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		parts := strings.Split(c.Request().Header.Get("Authorization"), " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return next(c)
		}

		c.Set("uid", identity.UID)
		c.Set(identityKey, identity)

		return next(c)
	}
}

// IdentityFrom returns the identity stored by Authenticate, if any.
func IdentityFrom(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)
	return identity, ok
}
