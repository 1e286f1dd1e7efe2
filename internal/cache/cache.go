package cache

import (
	"context"
	"errors"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

type CartCache interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Set(ctx context.Context, userID string, items []domain.CartItem) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
