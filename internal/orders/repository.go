package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists")
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	// Delete exists only as a checkout compensation step; orders are never
	// mutated or removed otherwise.
	Delete(ctx context.Context, id uuid.UUID) error
}
