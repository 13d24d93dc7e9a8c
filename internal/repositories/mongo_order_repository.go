package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boutique/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepository is a MongoDB implementation of OrderRepository
// backed by the "orders" collection. Documents are inserted once and
// never modified.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create inserts a new order document. The order code is the document ID,
// so a duplicate code fails the insert instead of overwriting history.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID returns an order by its order code.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// ListByEmail returns the orders for an exact customer email, newest first.
func (r *MongoOrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"customer.email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// CreateIndexes sets up the index backing the order-history query.
func (r *MongoOrderRepository) CreateIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "customer.email", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}
