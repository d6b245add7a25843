package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository implements ports.CartRepository. Add and Remove run the cart
// write and the product quantity adjustment inside one session transaction so
// a crash between the two cannot desynchronise cart and inventory.
type CartRepository struct {
	client   *mongo.Client
	carts    *mongo.Collection
	products *mongo.Collection
}

func NewCartRepository(client *mongo.Client, db *mongo.Database) *CartRepository {
	return &CartRepository{
		client:   client,
		carts:    db.Collection(collectionCarts),
		products: db.Collection(collectionProducts),
	}
}

// Add inserts the cart row and decrements the product quantity by one.
// The decrement is unconditional; quantity may go negative.
func (r *CartRepository) Add(ctx context.Context, item *domain.CartItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	insertedID, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.carts.InsertOne(sc, item)
		if err != nil {
			return nil, fmt.Errorf("insert cart row: %w", err)
		}

		update := bson.M{"$inc": bson.M{"quantity": -1}}
		if _, err := r.products.UpdateOne(sc, bson.M{"_id": item.ProductID}, update); err != nil {
			return nil, fmt.Errorf("decrement quantity: %w", err)
		}
		return res.InsertedID, nil
	})
	if err != nil {
		return "", err
	}

	oid, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", insertedID), nil
	}
	return oid.Hex(), nil
}

// Remove deletes the cart row and increments the product quantity by one.
func (r *CartRepository) Remove(ctx context.Context, cartID, productID string) error {
	cartOID, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return domain.ErrInvalidID
	}
	productOID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.carts.DeleteOne(sc, bson.M{"_id": cartOID})
		if err != nil {
			return nil, fmt.Errorf("delete cart row: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrCartItemNotFound
		}

		update := bson.M{"$inc": bson.M{"quantity": 1}}
		if _, err := r.products.UpdateOne(sc, bson.M{"_id": productOID}, update); err != nil {
			return nil, fmt.Errorf("increment quantity: %w", err)
		}
		return nil, nil
	})
	return err
}

func (r *CartRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.carts.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("count cart rows: %w", err)
	}
	return n, nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart rows: %w", err)
	}
	defer cursor.Close(ctx)

	items := []domain.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart rows: %w", err)
	}
	return items, nil
}

// EnsureIndexes creates the email index on the carts collection.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
