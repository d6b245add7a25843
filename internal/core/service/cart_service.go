package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercebook/commerce-api/internal/api/metrics"
	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// CartService implements the shopping cart on top of the transactional cart
// repository.
type CartService struct {
	repo ports.CartRepository
	log  zerolog.Logger
}

func NewCartService(repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

// Add inserts a cart row for the caller and decrements the product quantity.
// The decrement is unconditional; inventory may go negative under oversell.
func (s *CartService) Add(ctx context.Context, input ports.AddToCartInput, callerEmail string) (string, error) {
	if input.Email != callerEmail {
		return "", domain.ErrOwnerMismatch
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return "", domain.ErrInvalidID
	}

	item := &domain.CartItem{
		ProductID: productID,
		Email:     input.Email,
		Quantity:  input.Quantity,
		AddedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Add(ctx, item)
	if err != nil {
		return "", fmt.Errorf("add to cart: %w", err)
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("cart_id", id).Str("email", input.Email).Msg("cart row added")
	return id, nil
}

// Remove deletes the cart row and restores the product quantity.
func (s *CartService) Remove(ctx context.Context, cartID, productID string) error {
	if err := s.repo.Remove(ctx, cartID, productID); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return nil
}

// Count returns the number of cart rows for email. The target email must be
// the verified caller.
func (s *CartService) Count(ctx context.Context, email, callerEmail string) (int64, error) {
	if email != callerEmail {
		return 0, domain.ErrOwnerMismatch
	}
	return s.repo.CountByEmail(ctx, email)
}

// List returns all cart rows for email. The target email must be the
// verified caller.
func (s *CartService) List(ctx context.Context, email, callerEmail string) ([]domain.CartItem, error) {
	if email != callerEmail {
		return nil, domain.ErrOwnerMismatch
	}
	items, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}
