package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// RoleLookup resolves a caller's stored role by email.
type RoleLookup interface {
	Role(ctx context.Context, email string) (string, error)
}

// RequireSeller enforces the seller role guard. The role comes from the
// users collection, not from the token claims: an unregistered caller or a
// buyer is rejected with 403.
func RequireSeller(roles RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)

			role, err := roles.Role(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if role != domain.RoleSeller {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "unauthorized access"})
			}

			return next(c)
		}
	}
}
