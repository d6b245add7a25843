package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/ports"
)

// UserHandler handles registration and role lookup.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type roleResponse struct {
	Role string `json:"role,omitempty"`
}

// Register handles POST /users.
//
// The profile is stored as-given, minus the password field which is hashed
// before persisting. Re-registering an email is a no-op acknowledged with
// insertedId null, so the storefront can POST on every social login.
//
// @Summary      Register a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile  body      map[string]interface{}  true  "User profile; must carry email"
// @Success      200      {object}  ports.RegisterResult
// @Failure      400      {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var profile map[string]any
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if email, _ := profile["email"].(string); email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	result, err := h.users.Register(c.Request().Context(), profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Role handles GET /userRole/:email.
//
// @Summary      Look up a user's role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  roleResponse
// @Router       /userRole/{email} [get]
func (h *UserHandler) Role(c echo.Context) error {
	email := c.Param("email")

	role, err := h.users.Role(c.Request().Context(), email)
	if err != nil {
		return err
	}

	// Unknown email renders {} rather than an error; the storefront treats
	// an absent role as "buyer-like visitor".
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}
