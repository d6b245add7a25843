package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// CartHandler handles the shopping cart endpoints. All of them sit behind
// the auth middleware and act only on the verified caller's own cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Quantity  int    `json:"quantity"`
}

type cartCountResponse struct {
	Count int64 `json:"count"`
}

type deletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Add handles PUT /addTocart.
//
// @Summary      Add a product to the caller's cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        item  body      addToCartRequest  true  "Cart item; email must match the token"
// @Success      200   {object}  insertedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /addTocart [put]
func (h *CartHandler) Add(c echo.Context) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Add(c.Request().Context(), ports.AddToCartInput{
		ProductID: req.ProductID,
		Email:     req.Email,
		Quantity:  req.Quantity,
	}, caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, insertedResponse{InsertedID: id})
}

// Count handles GET /cartnumber?email=.
//
// @Summary      Number of items in the caller's cart
// @Tags         cart
// @Produce      json
// @Security     TokenAuth
// @Param        email  query     string  true  "Caller email; must match the token"
// @Success      200    {object}  cartCountResponse
// @Failure      401    {object}  map[string]string
// @Router       /cartnumber [get]
func (h *CartHandler) Count(c echo.Context) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	n, err := h.service.Count(c.Request().Context(), c.QueryParam("email"), caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, cartCountResponse{Count: n})
}

// List handles GET /myCart/:email.
//
// @Summary      List the caller's cart items
// @Tags         cart
// @Produce      json
// @Security     TokenAuth
// @Param        email  path      string  true  "Caller email; must match the token"
// @Success      200    {array}   domain.CartItem
// @Failure      401    {object}  map[string]string
// @Router       /myCart/{email} [get]
func (h *CartHandler) List(c echo.Context) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), c.Param("email"), caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /removeCart?cartId=&productId=.
// Deleting the row restores the product quantity in the same transaction.
//
// @Summary      Remove an item from the caller's cart
// @Tags         cart
// @Produce      json
// @Security     TokenAuth
// @Param        cartId     query     string  true  "Cart row ObjectID hex"
// @Param        productId  query     string  true  "Product ObjectID hex"
// @Success      200        {object}  deletedResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /removeCart [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	if _, err := verifiedEmail(c); err != nil {
		return err
	}

	err := h.service.Remove(c.Request().Context(), c.QueryParam("cartId"), c.QueryParam("productId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedResponse{DeletedCount: 1})
}
