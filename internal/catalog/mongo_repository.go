package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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

func NewMongoRepository(db *mongo.Database) ProductRepository {
	return &mongoRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoRepository) List(ctx context.Context, f Filter) ([]*domain.Product, error) {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = exactInsensitive(f.Category)
	}
	if f.Type != "" {
		filter["type"] = exactInsensitive(f.Type)
	}
	if f.Brand != "" {
		filter["brand"] = exactInsensitive(f.Brand)
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if f.Search != "" {
		re := containsInsensitive(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"brand": re},
			bson.M{"description": re},
		}
	}

	opts := options.Find().SetSort(sortSpec(f.Sort))
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (m *mongoRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product

	err := m.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (m *mongoRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := m.collection.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (m *mongoRepository) Related(ctx context.Context, p *domain.Product, limit int) ([]*domain.Product, error) {
	filter := bson.M{
		"category": p.Category,
		"id":       bson.M{"$ne": p.ID},
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"id": 1, "name": 1, "price": 1, "image": 1, "rating": 1, "reviews": 1,
		})

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query related products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode related products: %w", err)
	}

	return products, nil
}

// ReplaceAll wipes the catalog and inserts the given set. Used by the seed
// tool for administrative reseeding.
func (m *mongoRepository) ReplaceAll(ctx context.Context, products []*domain.Product) error {
	if _, err := m.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	return m.InsertMany(ctx, products)
}

func (m *mongoRepository) DeleteFromID(ctx context.Context, minID int64) (int64, error) {
	res, err := m.collection.DeleteMany(ctx, bson.M{"id": bson.M{"$gte": minID}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *mongoRepository) InsertMany(ctx context.Context, products []*domain.Product) error {
	now := time.Now()
	docs := make([]interface{}, len(products))
	for i, p := range products {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		docs[i] = p
	}

	if _, err := m.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

func sortSpec(sort string) bson.D {
	switch sort {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	case "popular":
		return bson.D{{Key: "reviews", Value: -1}}
	case "newest":
		return bson.D{{Key: "id", Value: -1}}
	default:
		return bson.D{{Key: "id", Value: 1}}
	}
}

func exactInsensitive(v string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
}

func containsInsensitive(v string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"}
}
