package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// verifiedEmail returns the email placed in the context by the auth
// middleware. A blank value means the route was wired without the
// middleware, which is a server bug rather than a client error.
func verifiedEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "forbidden access")
	}
	return email, nil
}
