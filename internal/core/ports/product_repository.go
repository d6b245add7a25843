package ports

import (
	"context"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// ProductFilter carries the query parameters for listing products.
type ProductFilter struct {
	Search string // optional: case-insensitive match on name or ownerName
	Page   int64  // 1-based
	Size   int64  // rows per page, no upper bound
}

// UpdateSummary mirrors the provider's update acknowledgement. It is the
// response body of the like/unlike/comment endpoints.
type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ProductRepository defines persistence operations on the products collection.
// All array mutations are atomic provider-side operators; none of them read
// the document into memory first.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	// EstimatedCount returns the approximate total document count.
	EstimatedCount(ctx context.Context) (int64, error)
	// FindByID returns domain.ErrInvalidID for malformed ids and
	// domain.ErrProductNotFound for absent ones.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (string, error)

	// AddLike adds email to the likes set ($addToSet — a repeat like is a no-op).
	AddLike(ctx context.Context, id, email string) (*UpdateSummary, error)
	// RemoveLike removes every occurrence of email from likes.
	RemoveLike(ctx context.Context, id, email string) (*UpdateSummary, error)
	AddComment(ctx context.Context, id string, c domain.Comment) (*UpdateSummary, error)
	// RemoveComments removes all comments whose email matches.
	RemoveComments(ctx context.Context, id, email string) (*UpdateSummary, error)
}
