package ports

import (
	"context"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// AddToCartInput carries one add-to-cart action.
type AddToCartInput struct {
	ProductID string
	Email     string
	Quantity  int
}

// CartService covers the shopping cart. Every operation is identity-scoped:
// the target email must equal the token-verified caller email.
type CartService interface {
	Add(ctx context.Context, input AddToCartInput, callerEmail string) (string, error)
	Remove(ctx context.Context, cartID, productID string) error
	Count(ctx context.Context, email, callerEmail string) (int64, error)
	List(ctx context.Context, email, callerEmail string) ([]domain.CartItem, error)
}
