package cart

import (
	"context"
	"errors"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

// CartRepository defines the interface for cart line-item operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	ListItems(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, qty int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	DeleteAll(ctx context.Context, userID string) error
	CreateIndexes(ctx context.Context) error
}
