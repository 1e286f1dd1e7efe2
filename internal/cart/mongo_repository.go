package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) CartRepository {
	return &mongoRepository{
		collection: db.Collection("cart_items"),
	}
}

func (m *mongoRepository) ListItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}

	return items, nil
}

// AddItem increments the quantity of an existing (user, product) line item
// or inserts a new one capturing the given price.
func (m *mongoRepository) AddItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	now := time.Now()
	filter := bson.M{"user_id": item.UserID, "product_id": item.ProductID}

	var existing domain.CartItem
	err := m.collection.FindOne(ctx, filter).Decode(&existing)

	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to check existing cart item: %w", err)
		}

		item.CreatedAt = now
		item.UpdatedAt = now
		res, errInsert := m.collection.InsertOne(ctx, item)
		if errInsert != nil {
			return nil, fmt.Errorf("failed to insert cart item: %w", errInsert)
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			item.ID = oid
		}
		return &item, nil
	}

	update := bson.M{
		"$inc": bson.M{"qty": item.Qty},
		"$set": bson.M{"updated_at": now},
	}
	if _, err := m.collection.UpdateOne(ctx, bson.M{"_id": existing.ID}, update); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	existing.Qty += item.Qty
	existing.UpdatedAt = now
	return &existing, nil
}

func (m *mongoRepository) UpdateQuantity(ctx context.Context, userID, itemID string, qty int) (*domain.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}

	filter := bson.M{"_id": oid, "user_id": userID}
	update := bson.M{
		"$set": bson.M{"qty": qty, "updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item domain.CartItem
	if err := m.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

func (m *mongoRepository) RemoveItem(ctx context.Context, userID, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return ErrItemNotFound
	}

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (m *mongoRepository) DeleteAll(ctx context.Context, userID string) error {
	if _, err := m.collection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(90 * 24 * 60 * 60), // 90 days TTL
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
