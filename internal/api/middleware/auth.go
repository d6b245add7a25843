package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenVerifier checks a credential token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (map[string]any, error)
}

// Auth validates the bare `token` header and injects the decoded claims into
// the request context. The header carries the token directly, without a
// Bearer scheme — that is the wire contract the frontend speaks.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("token")
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
			}

			c.Set("claims", claims)
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}

			return next(c)
		}
	}
}
