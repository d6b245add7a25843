package ports

import (
	"context"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// CreateProductInput carries a new listing plus the verified caller identity.
type CreateProductInput struct {
	Product     domain.Product
	CallerEmail string
}

// ProductService covers the catalog and its like/comment sub-collections.
// CallerEmail arguments carry the token-verified identity; operations that
// act on a caller-supplied email reject mismatches with domain.ErrOwnerMismatch.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create rejects listings whose OwnerEmail differs from CallerEmail.
	Create(ctx context.Context, input CreateProductInput) (string, error)

	Like(ctx context.Context, id, email, callerEmail string) (*UpdateSummary, error)
	Unlike(ctx context.Context, id, email, callerEmail string) (*UpdateSummary, error)
	Comment(ctx context.Context, id string, c domain.Comment, callerEmail string) (*UpdateSummary, error)
	DeleteComments(ctx context.Context, id, email, callerEmail string) (*UpdateSummary, error)
}
