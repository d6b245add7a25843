package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commercebook/commerce-api/internal/api/metrics"
	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// CountCache abstracts the short-lived product count cache (Redis).
type CountCache interface {
	// Get returns the cached count and whether a value was present.
	Get(ctx context.Context) (int64, bool, error)
	Set(ctx context.Context, n int64) error
}

// ProductService implements the catalog and its like/comment sub-collections.
type ProductService struct {
	repo  ports.ProductRepository
	cache CountCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CountCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

// List returns one page of products, optionally filtered by a
// case-insensitive substring match on name or owner name. An empty result is
// an empty slice, never an error.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Size <= 0 {
		filter.Size = defaultSize
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Count returns the approximate total product count. Cache failures fall
// through to the store.
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	if n, ok, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("count cache read failed, querying store")
	} else if ok {
		return n, nil
	}

	n, err := s.repo.EstimatedCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	if err := s.cache.Set(ctx, n); err != nil {
		s.log.Warn().Err(err).Msg("count cache write failed")
	}
	return n, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new listing. The declared owner must be the verified
// caller; the role guard has already established the caller is a seller.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (string, error) {
	if input.Product.OwnerEmail != input.CallerEmail {
		return "", domain.ErrOwnerMismatch
	}

	p := input.Product
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []domain.Comment{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	id, err := s.repo.Insert(ctx, &p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", id).Str("owner", p.OwnerEmail).Msg("product created")
	return id, nil
}

// Like adds the caller's email to the product's like set. Likes are a set:
// liking twice is a no-op, and concurrent likes from different emails both
// land because the mutation is a single provider-side operator.
func (s *ProductService) Like(ctx context.Context, id, email, callerEmail string) (*ports.UpdateSummary, error) {
	if email != callerEmail {
		return nil, domain.ErrOwnerMismatch
	}
	summary, err := s.repo.AddLike(ctx, id, email)
	if err != nil {
		return nil, err
	}
	metrics.LikesTotal.WithLabelValues("like").Inc()
	return summary, nil
}

// Unlike removes the caller's email from the product's like set.
func (s *ProductService) Unlike(ctx context.Context, id, email, callerEmail string) (*ports.UpdateSummary, error) {
	if email != callerEmail {
		return nil, domain.ErrOwnerMismatch
	}
	summary, err := s.repo.RemoveLike(ctx, id, email)
	if err != nil {
		return nil, err
	}
	metrics.LikesTotal.WithLabelValues("dislike").Inc()
	return summary, nil
}

// Comment appends one comment. The comment's declared email must be the
// verified caller.
func (s *ProductService) Comment(ctx context.Context, id string, c domain.Comment, callerEmail string) (*ports.UpdateSummary, error) {
	if c.Email != callerEmail {
		return nil, domain.ErrOwnerMismatch
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return s.repo.AddComment(ctx, id, c)
}

// DeleteComments removes all of the caller's comments from the product.
func (s *ProductService) DeleteComments(ctx context.Context, id, email, callerEmail string) (*ports.UpdateSummary, error) {
	if email != callerEmail {
		return nil, domain.ErrOwnerMismatch
	}
	return s.repo.RemoveComments(ctx, id, email)
}
