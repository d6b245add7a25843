package ports

import (
	"context"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// CartRepository defines persistence operations on the carts collection.
// Add and Remove pair the cart write with the product quantity adjustment in
// a single transaction so a crash cannot desynchronise cart and inventory.
type CartRepository interface {
	// Add inserts the cart row and decrements the product quantity by one.
	// Returns the new cart row id in hex.
	Add(ctx context.Context, item *domain.CartItem) (string, error)
	// Remove deletes the cart row and increments the product quantity by one.
	Remove(ctx context.Context, cartID, productID string) error
	CountByEmail(ctx context.Context, email string) (int64, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
}
