package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog and its
// like/comment sub-collections.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products?searchText=&page=&size=.
//
// Non-numeric page/size fall back to their defaults rather than erroring;
// the storefront sends whatever is in its URL bar.
//
// @Summary      List products with optional search and pagination
// @Tags         products
// @Produce      json
// @Param        searchText  query     string  false  "Case-insensitive match on name or ownerName"
// @Param        page        query     int     false  "1-based page number (default 1)"
// @Param        size        query     int     false  "Page size (default 10)"
// @Success      200         {array}   domain.Product
// @Failure      500         {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Search: c.QueryParam("searchText"),
		Page:   parseInt64(c.QueryParam("page"), 1),
		Size:   parseInt64(c.QueryParam("size"), 10),
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// Count handles GET /productCount.
//
// @Summary      Total number of products
// @Tags         products
// @Produce      json
// @Success      200  {object}  countResponse
// @Router       /productCount [get]
func (h *ProductHandler) Count(c echo.Context) error {
	n, err := h.service.Count(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, countResponse{ProductCount: n})
}

// GetOne handles GET /singleProduct/:id.
//
// @Summary      Fetch one product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ObjectID hex"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /singleProduct/{id} [get]
func (h *ProductHandler) GetOne(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products. Requires the seller role; the body's
// ownerEmail must match the verified caller.
//
// @Summary      Create a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        product  body      createProductRequest  true  "New listing"
// @Success      200      {object}  insertedResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	email, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Product:     req.toDomain(),
		CallerEmail: email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, insertedResponse{InsertedID: id})
}

// Like handles PUT /like/:id?email=.
//
// @Summary      Like a product
// @Tags         products
// @Produce      json
// @Security     TokenAuth
// @Param        id     path      string  true  "Product ObjectID hex"
// @Param        email  query     string  true  "Caller email; must match the token"
// @Success      200    {object}  ports.UpdateSummary
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /like/{id} [put]
func (h *ProductHandler) Like(c echo.Context) error {
	return h.likeAction(c, h.service.Like)
}

// Unlike handles PUT /disLike/:id?email=.
//
// @Summary      Remove a like from a product
// @Tags         products
// @Produce      json
// @Security     TokenAuth
// @Param        id     path      string  true  "Product ObjectID hex"
// @Param        email  query     string  true  "Caller email; must match the token"
// @Success      200    {object}  ports.UpdateSummary
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /disLike/{id} [put]
func (h *ProductHandler) Unlike(c echo.Context) error {
	return h.likeAction(c, h.service.Unlike)
}

func (h *ProductHandler) likeAction(c echo.Context, op func(ctx context.Context, id, email, callerEmail string) (*ports.UpdateSummary, error)) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	summary, err := op(c.Request().Context(), c.Param("id"), c.QueryParam("email"), caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// Comment handles PUT /comment/:id.
//
// @Summary      Add a comment to a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id       path      string          true  "Product ObjectID hex"
// @Param        comment  body      commentRequest  true  "Comment; email must match the token"
// @Success      200      {object}  ports.UpdateSummary
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /comment/{id} [put]
func (h *ProductHandler) Comment(c echo.Context) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.service.Comment(c.Request().Context(), c.Param("id"), req.toDomain(), caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// DeleteComments handles DELETE /deleteComments/:id?email=.
// Removes every comment the caller left on the product.
//
// @Summary      Delete all of the caller's comments on a product
// @Tags         products
// @Produce      json
// @Security     TokenAuth
// @Param        id     path      string  true  "Product ObjectID hex"
// @Param        email  query     string  true  "Caller email; must match the token"
// @Success      200    {object}  ports.UpdateSummary
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /deleteComments/{id} [delete]
func (h *ProductHandler) DeleteComments(c echo.Context) error {
	caller, err := verifiedEmail(c)
	if err != nil {
		return err
	}

	summary, err := h.service.DeleteComments(c.Request().Context(), c.Param("id"), c.QueryParam("email"), caller)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerMismatch) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "forbidden access"})
		}
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// parseInt64 parses s, falling back to def for empty or non-numeric input.
func parseInt64(s string, def int64) int64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
