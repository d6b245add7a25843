package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/ports"
)

// PaymentHandler handles payment-intent creation.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent.
//
// The price arrives in major units (dollars) and is converted to cents for
// the processor. Non-positive prices are rejected with 422.
//
// @Summary      Create a card payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      paymentIntentRequest  true  "Price in major units"
// @Success      200      {object}  paymentIntentResponse
// @Failure      400      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
