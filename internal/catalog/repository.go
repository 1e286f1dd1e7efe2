package catalog

import (
	"context"
	"errors"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows and orders a catalog listing. Zero values mean "no filter".
type Filter struct {
	Category string
	Type     string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     string // price_asc, price_desc, rating, popular, newest; default id asc
}

// ProductRepository defines the interface for catalog data operations.
// Consumers define this interface, not the MongoDB implementation.
type ProductRepository interface {
	List(ctx context.Context, f Filter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
	Related(ctx context.Context, p *domain.Product, limit int) ([]*domain.Product, error)
	ReplaceAll(ctx context.Context, products []*domain.Product) error
	DeleteFromID(ctx context.Context, minID int64) (int64, error)
	InsertMany(ctx context.Context, products []*domain.Product) error
	CreateIndexes(ctx context.Context) error
}
