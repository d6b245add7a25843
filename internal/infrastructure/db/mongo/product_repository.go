package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

const collectionProducts = "products"

// ProductRepository implements ports.ProductRepository on the products
// collection. Like and comment mutations are single atomic update operators
// ($addToSet, $pull, $push) keyed by _id, so they cannot lose concurrent
// writes the way a read-modify-write of the whole document would.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

// List returns one page of products in provider-default order. When
// filter.Search is set, a case-insensitive regex matches name or ownerName.
func (r *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"name": pattern},
			{"ownerName": pattern},
		}
	}

	opts := options.Find().
		SetSkip((filter.Page - 1) * filter.Size).
		SetLimit(filter.Size)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// EstimatedCount returns the collection's approximate document count.
func (r *ProductRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.EstimatedDocumentCount(ctx)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// AddLike adds email to the likes set; a repeat like modifies nothing.
func (r *ProductRepository) AddLike(ctx context.Context, id, email string) (*ports.UpdateSummary, error) {
	return r.updateByID(ctx, id, bson.M{"$addToSet": bson.M{"likes": email}})
}

// RemoveLike removes every occurrence of email from likes.
func (r *ProductRepository) RemoveLike(ctx context.Context, id, email string) (*ports.UpdateSummary, error) {
	return r.updateByID(ctx, id, bson.M{"$pull": bson.M{"likes": email}})
}

func (r *ProductRepository) AddComment(ctx context.Context, id string, c domain.Comment) (*ports.UpdateSummary, error) {
	return r.updateByID(ctx, id, bson.M{"$push": bson.M{"comments": c}})
}

// RemoveComments removes all comments whose email matches.
func (r *ProductRepository) RemoveComments(ctx context.Context, id, email string) (*ports.UpdateSummary, error) {
	return r.updateByID(ctx, id, bson.M{"$pull": bson.M{"comments": bson.M{"email": email}}})
}

func (r *ProductRepository) updateByID(ctx context.Context, id string, update bson.M) (*ports.UpdateSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return &ports.UpdateSummary{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
