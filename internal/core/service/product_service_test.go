package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubProductRepo mirrors the atomic array semantics of the Mongo repository:
// AddLike behaves like $addToSet, RemoveLike and RemoveComments like $pull.
type stubProductRepo struct {
	mu         sync.Mutex
	byID       map[string]*domain.Product
	lastFilter ports.ProductFilter
	countValue int64
	countCalls int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) seed(id string) *domain.Product {
	oid, _ := primitive.ObjectIDFromHex(id)
	p := &domain.Product{ID: oid, Name: "sample", OwnerEmail: "seller@example.com", Quantity: 5}
	r.byID[id] = p
	return p
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	r.lastFilter = filter
	return nil, nil
}

func (r *stubProductRepo) EstimatedCount(_ context.Context) (int64, error) {
	r.countCalls++
	return r.countValue, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (string, error) {
	id := fmt.Sprintf("%024x", len(r.byID)+1)
	oid, _ := primitive.ObjectIDFromHex(id)
	p.ID = oid
	r.byID[id] = p
	return id, nil
}

func (r *stubProductRepo) AddLike(_ context.Context, id, email string) (*ports.UpdateSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	for _, e := range p.Likes {
		if e == email {
			return &ports.UpdateSummary{MatchedCount: 1, ModifiedCount: 0}, nil
		}
	}
	p.Likes = append(p.Likes, email)
	return &ports.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubProductRepo) RemoveLike(_ context.Context, id, email string) (*ports.UpdateSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	kept := p.Likes[:0]
	modified := int64(0)
	for _, e := range p.Likes {
		if e == email {
			modified = 1
			continue
		}
		kept = append(kept, e)
	}
	p.Likes = kept
	return &ports.UpdateSummary{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *stubProductRepo) AddComment(_ context.Context, id string, c domain.Comment) (*ports.UpdateSummary, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.Comments = append(p.Comments, c)
	return &ports.UpdateSummary{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubProductRepo) RemoveComments(_ context.Context, id, email string) (*ports.UpdateSummary, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	kept := p.Comments[:0]
	modified := int64(0)
	for _, c := range p.Comments {
		if c.Email == email {
			modified = 1
			continue
		}
		kept = append(kept, c)
	}
	p.Comments = kept
	return &ports.UpdateSummary{MatchedCount: 1, ModifiedCount: modified}, nil
}

type stubCountCache struct {
	value    int64
	present  bool
	getErr   error
	setCalls int
}

func (c *stubCountCache) Get(_ context.Context) (int64, bool, error) {
	return c.value, c.present, c.getErr
}

func (c *stubCountCache) Set(_ context.Context, n int64) error {
	c.value = n
	c.present = true
	c.setCalls++
	return nil
}

const testProductID = "64a7f0c2e4b0a1b2c3d4e5f6"

func newProductSvc(repo *stubProductRepo, cache *stubCountCache) *ProductService {
	if cache == nil {
		cache = &stubCountCache{}
	}
	return NewProductService(repo, cache, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// List / Count
// ---------------------------------------------------------------------------

func TestProductService_List_AppliesDefaults(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo, nil)

	products, err := svc.List(context.Background(), ports.ProductFilter{Page: 0, Size: -3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Size != 10 {
		t.Fatalf("expected defaults page=1 size=10, got page=%d size=%d", repo.lastFilter.Page, repo.lastFilter.Size)
	}
	if products == nil {
		t.Fatal("empty result must be an empty slice, not nil")
	}
}

func TestProductService_Count_CacheHitSkipsStore(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCountCache{value: 42, present: true}
	svc := newProductSvc(repo, cache)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected cached count 42, got %d", n)
	}
	if repo.countCalls != 0 {
		t.Fatal("store must not be queried on cache hit")
	}
}

func TestProductService_Count_CacheMissQueriesAndBackfills(t *testing.T) {
	repo := newStubProductRepo()
	repo.countValue = 7
	cache := &stubCountCache{}
	svc := newProductSvc(repo, cache)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
	if cache.setCalls != 1 || cache.value != 7 {
		t.Fatal("expected cache to be backfilled")
	}
}

func TestProductService_Count_CacheErrorFallsThrough(t *testing.T) {
	repo := newStubProductRepo()
	repo.countValue = 9
	cache := &stubCountCache{getErr: errors.New("redis down")}
	svc := newProductSvc(repo, cache)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count must survive a cache failure, got: %v", err)
	}
	if n != 9 {
		t.Fatalf("expected store count 9, got %d", n)
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProductService_Create_OwnerMismatchRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo, nil)

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Product:     domain.Product{Name: "chair", OwnerEmail: "seller@example.com"},
		CallerEmail: "impostor@example.com",
	})
	if !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("no document may be inserted on rejection")
	}
}

func TestProductService_Create_InitialisesSubCollections(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductSvc(repo, nil)

	id, err := svc.Create(context.Background(), ports.CreateProductInput{
		Product:     domain.Product{Name: "chair", OwnerEmail: "seller@example.com", Quantity: 3},
		CallerEmail: "seller@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stored := repo.byID[id]
	if stored.Likes == nil || stored.Comments == nil {
		t.Fatal("likes and comments must be initialised to empty sequences")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("createdAt must be set")
	}
}

// ---------------------------------------------------------------------------
// Like / Unlike
// ---------------------------------------------------------------------------

func TestProductService_LikeThenUnlike_RestoresState(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	before := len(repo.byID[testProductID].Likes)

	if _, err := svc.Like(context.Background(), testProductID, "buyer@example.com", "buyer@example.com"); err != nil {
		t.Fatalf("like: %v", err)
	}
	if len(repo.byID[testProductID].Likes) != before+1 {
		t.Fatal("expected like to be appended")
	}

	if _, err := svc.Unlike(context.Background(), testProductID, "buyer@example.com", "buyer@example.com"); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if len(repo.byID[testProductID].Likes) != before {
		t.Fatal("unlike must restore the pre-like state")
	}
}

func TestProductService_Like_IsIdempotent(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	first, _ := svc.Like(context.Background(), testProductID, "buyer@example.com", "buyer@example.com")
	second, err := svc.Like(context.Background(), testProductID, "buyer@example.com", "buyer@example.com")
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if first.ModifiedCount != 1 || second.ModifiedCount != 0 {
		t.Fatalf("expected modified 1 then 0, got %d then %d", first.ModifiedCount, second.ModifiedCount)
	}
	if got := len(repo.byID[testProductID].Likes); got != 1 {
		t.Fatalf("expected a single like entry, got %d", got)
	}
}

func TestProductService_Like_CallerMismatchRejected(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	_, err := svc.Like(context.Background(), testProductID, "victim@example.com", "attacker@example.com")
	if !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
}

func TestProductService_ConcurrentLikes_NoneLost(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	emails := []string{
		"a@example.com", "b@example.com", "c@example.com",
		"d@example.com", "e@example.com", "f@example.com",
	}

	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			if _, err := svc.Like(context.Background(), testProductID, email, email); err != nil {
				t.Errorf("like %s: %v", email, err)
			}
		}(email)
	}
	wg.Wait()

	if got := len(repo.byID[testProductID].Likes); got != len(emails) {
		t.Fatalf("expected all %d concurrent likes to land, got %d", len(emails), got)
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestProductService_Comment_AppendsAndStampsTime(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	_, err := svc.Comment(context.Background(), testProductID,
		domain.Comment{Email: "buyer@example.com", Text: "nice"}, "buyer@example.com")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	comments := repo.byID[testProductID].Comments
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].CreatedAt.IsZero() {
		t.Fatal("comment createdAt must be stamped")
	}
}

func TestProductService_DeleteComments_RemovesOnlyCallers(t *testing.T) {
	repo := newStubProductRepo()
	p := repo.seed(testProductID)
	p.Comments = []domain.Comment{
		{Email: "buyer@example.com", Text: "one"},
		{Email: "other@example.com", Text: "two"},
		{Email: "buyer@example.com", Text: "three"},
	}
	svc := newProductSvc(repo, nil)

	if _, err := svc.DeleteComments(context.Background(), testProductID, "buyer@example.com", "buyer@example.com"); err != nil {
		t.Fatalf("delete comments: %v", err)
	}

	remaining := repo.byID[testProductID].Comments
	if len(remaining) != 1 || remaining[0].Email != "other@example.com" {
		t.Fatalf("expected only the other user's comment to remain, got %+v", remaining)
	}
}

func TestProductService_DeleteComments_CallerMismatchRejected(t *testing.T) {
	repo := newStubProductRepo()
	repo.seed(testProductID)
	svc := newProductSvc(repo, nil)

	_, err := svc.DeleteComments(context.Background(), testProductID, "victim@example.com", "attacker@example.com")
	if !errors.Is(err, domain.ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
}
