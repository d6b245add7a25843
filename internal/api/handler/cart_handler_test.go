package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

type stubCartService struct {
	addFn    func(ctx context.Context, input ports.AddToCartInput, callerEmail string) (string, error)
	removeFn func(ctx context.Context, cartID, productID string) error
	countFn  func(ctx context.Context, email, callerEmail string) (int64, error)
	listFn   func(ctx context.Context, email, callerEmail string) ([]domain.CartItem, error)
}

func (s *stubCartService) Add(ctx context.Context, input ports.AddToCartInput, callerEmail string) (string, error) {
	return s.addFn(ctx, input, callerEmail)
}

func (s *stubCartService) Remove(ctx context.Context, cartID, productID string) error {
	return s.removeFn(ctx, cartID, productID)
}

func (s *stubCartService) Count(ctx context.Context, email, callerEmail string) (int64, error) {
	return s.countFn(ctx, email, callerEmail)
}

func (s *stubCartService) List(ctx context.Context, email, callerEmail string) ([]domain.CartItem, error) {
	return s.listFn(ctx, email, callerEmail)
}

func TestCartHandler_Add_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, input ports.AddToCartInput, callerEmail string) (string, error) {
			if input.ProductID != "64a7f0c2e4b0a1b2c3d4e5f6" || input.Quantity != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if callerEmail != "buyer@example.com" {
				t.Fatalf("unexpected caller: %s", callerEmail)
			}
			return "64b8f1d3e4b0a1b2c3d4e5f7", nil
		},
	}
	handler := NewCartHandler(stub)

	body := strings.NewReader(`{"productId":"64a7f0c2e4b0a1b2c3d4e5f6","email":"buyer@example.com","quantity":2}`)
	req := httptest.NewRequest(http.MethodPut, "/addTocart", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "buyer@example.com")

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["insertedId"] != "64b8f1d3e4b0a1b2c3d4e5f7" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCartHandler_Add_CallerMismatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, input ports.AddToCartInput, callerEmail string) (string, error) {
			return "", domain.ErrOwnerMismatch
		},
	}
	handler := NewCartHandler(stub)

	body := strings.NewReader(`{"productId":"64a7f0c2e4b0a1b2c3d4e5f6","email":"victim@example.com","quantity":1}`)
	req := httptest.NewRequest(http.MethodPut, "/addTocart", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "attacker@example.com")

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCartHandler_Count(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		countFn: func(ctx context.Context, email, callerEmail string) (int64, error) {
			if email != "buyer@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return 3, nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/cartnumber?email=buyer@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "buyer@example.com")

	if err := handler.Count(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != 3 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCartHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		listFn: func(ctx context.Context, email, callerEmail string) ([]domain.CartItem, error) {
			return []domain.CartItem{}, nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/myCart/buyer@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("buyer@example.com")
	c.Set("email", "buyer@example.com")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestCartHandler_Remove(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		removeFn: func(ctx context.Context, cartID, productID string) error {
			if cartID != "64b8f1d3e4b0a1b2c3d4e5f7" || productID != "64a7f0c2e4b0a1b2c3d4e5f6" {
				t.Fatalf("unexpected args: %s %s", cartID, productID)
			}
			return nil
		},
	}
	handler := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/removeCart?cartId=64b8f1d3e4b0a1b2c3d4e5f7&productId=64a7f0c2e4b0a1b2c3d4e5f6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "buyer@example.com")

	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["deletedCount"] != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
