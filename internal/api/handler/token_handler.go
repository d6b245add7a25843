package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/ports"
)

// TokenHandler handles credential issuance.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt.
//
// The request body is an arbitrary JSON object; every field becomes a claim.
// The storefront sends {"email": "..."} after its own auth flow and keeps
// the returned token for the bare `token` header.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        claims  body      map[string]interface{}  true  "Claims payload, conventionally carrying email"
// @Success      200     {object}  tokenResponse
// @Failure      400     {object}  map[string]string
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var claims map[string]any
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
