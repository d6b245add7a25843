package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// stubCartRepo mirrors the transactional Mongo repository: Add and Remove
// always adjust the paired product quantity together.
type stubCartRepo struct {
	rows       map[string]*domain.CartItem
	quantities map[string]int
	nextID     int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{
		rows:       make(map[string]*domain.CartItem),
		quantities: make(map[string]int),
	}
}

func (r *stubCartRepo) Add(_ context.Context, item *domain.CartItem) (string, error) {
	r.nextID++
	id := primitive.NewObjectID()
	clone := *item
	clone.ID = id
	r.rows[id.Hex()] = &clone
	r.quantities[item.ProductID.Hex()]--
	return id.Hex(), nil
}

func (r *stubCartRepo) Remove(_ context.Context, cartID, productID string) error {
	if _, err := primitive.ObjectIDFromHex(cartID); err != nil {
		return domain.ErrInvalidID
	}
	if _, err := primitive.ObjectIDFromHex(productID); err != nil {
		return domain.ErrInvalidID
	}
	if _, ok := r.rows[cartID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(r.rows, cartID)
	r.quantities[productID]++
	return nil
}

func (r *stubCartRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, item := range r.rows {
		if item.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *stubCartRepo) ListByEmail(_ context.Context, email string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, item := range r.rows {
		if item.Email == email {
			items = append(items, *item)
		}
	}
	return items, nil
}

const testCartProductID = "64a7f0c2e4b0a1b2c3d4e5f6"

func TestCartService_AddThenRemove_RestoresQuantity(t *testing.T) {
	repo := newStubCartRepo()
	repo.quantities[testCartProductID] = 5
	svc := NewCartService(repo, zerolog.Nop())

	cartID, err := svc.Add(context.Background(), ports.AddToCartInput{
		ProductID: testCartProductID,
		Email:     "buyer@example.com",
		Quantity:  1,
	}, "buyer@example.com")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if repo.quantities[testCartProductID] != 4 {
		t.Fatalf("expected quantity 4 after add, got %d", repo.quantities[testCartProductID])
	}

	if err := svc.Remove(context.Background(), cartID, testCartProductID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if repo.quantities[testCartProductID] != 5 {
		t.Fatalf("expected quantity restored to 5, got %d", repo.quantities[testCartProductID])
	}
	if len(repo.rows) != 0 {
		t.Fatal("expected cart row to be deleted")
	}
}

func TestCartService_Add_DecrementIsUnconditional(t *testing.T) {
	repo := newStubCartRepo()
	repo.quantities[testCartProductID] = 0
	svc := NewCartService(repo, zerolog.Nop())

	_, err := svc.Add(context.Background(), ports.AddToCartInput{
		ProductID: testCartProductID,
		Email:     "buyer@example.com",
		Quantity:  1,
	}, "buyer@example.com")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if repo.quantities[testCartProductID] != -1 {
		t.Fatalf("decrement is unconditional, expected -1, got %d", repo.quantities[testCartProductID])
	}
}

func TestCartService_Add_CallerMismatchRejected(t *testing.T) {
	repo := newStubCartRepo()
	svc := NewCartService(repo, zerolog.Nop())

	_, err := svc.Add(context.Background(), ports.AddToCartInput{
		ProductID: testCartProductID,
		Email:     "victim@example.com",
	}, "attacker@example.com")
	if !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatal("no cart row may be inserted on rejection")
	}
}

func TestCartService_Add_MalformedProductID(t *testing.T) {
	repo := newStubCartRepo()
	svc := NewCartService(repo, zerolog.Nop())

	_, err := svc.Add(context.Background(), ports.AddToCartInput{
		ProductID: "not-hex",
		Email:     "buyer@example.com",
	}, "buyer@example.com")
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestCartService_CountAndList_OwnerOnly(t *testing.T) {
	repo := newStubCartRepo()
	repo.quantities[testCartProductID] = 5
	svc := NewCartService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(context.Background(), ports.AddToCartInput{
			ProductID: testCartProductID,
			Email:     "buyer@example.com",
			Quantity:  1,
		}, "buyer@example.com"); err != nil {
			t.Fatalf("seed add: %v", err)
		}
	}

	n, err := svc.Count(context.Background(), "buyer@example.com", "buyer@example.com")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}

	items, err := svc.List(context.Background(), "buyer@example.com", "buyer@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	if _, err := svc.Count(context.Background(), "buyer@example.com", "other@example.com"); !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("count: expected ErrOwnerMismatch, got %v", err)
	}
	if _, err := svc.List(context.Background(), "buyer@example.com", "other@example.com"); !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("list: expected ErrOwnerMismatch, got %v", err)
	}
}

func TestCartService_List_EmptyIsEmptySlice(t *testing.T) {
	repo := newStubCartRepo()
	svc := NewCartService(repo, zerolog.Nop())

	items, err := svc.List(context.Background(), "buyer@example.com", "buyer@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil {
		t.Fatal("empty cart must be an empty slice, not nil")
	}
}
