package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boutique/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCartRepository is a MongoDB implementation of CartRepository backed
// by the "cart_items" collection, one document per line item.
type MongoCartRepository struct {
	collection *mongo.Collection
}

// NewMongoCartRepository creates a new instance of MongoCartRepository.
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		collection: db.Collection("cart_items"),
	}
}

// GetBySession returns all line items belonging to the session.
func (r *MongoCartRepository) GetBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

// GetByID returns a single line item by ID within the session.
func (r *MongoCartRepository) GetByID(ctx context.Context, sessionID, id string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "session_id": sessionID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", id, err)
	}
	return &item, nil
}

// FindBySessionAndProduct returns the session's line for a product, or
// ErrCartItemNotFound when the product is not in the cart yet.
func (r *MongoCartRepository) FindBySessionAndProduct(ctx context.Context, sessionID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID, "product_id": productID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to find cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create inserts a new line item, assigning an ID if none is set.
func (r *MongoCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line item.
func (r *MongoCartRepository) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) error {
	update := bson.M{"$set": bson.M{
		"quantity":   quantity,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "session_id": sessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Delete removes a single line item.
func (r *MongoCartRepository) Delete(ctx context.Context, sessionID, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "session_id": sessionID})
	if err != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// DeleteItems removes exactly the named line items. Items that no longer
// exist are skipped silently so a retried clear stays idempotent.
func (r *MongoCartRepository) DeleteItems(ctx context.Context, sessionID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	filter := bson.M{"session_id": sessionID, "_id": bson.M{"$in": ids}}
	if _, err := r.collection.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}
	return nil
}
