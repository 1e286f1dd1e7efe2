package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreyat81/e-com-mart/internal/cache"
	"github.com/shreyat81/e-com-mart/internal/cart"
	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/pricing"
	"github.com/shreyat81/e-com-mart/internal/validation"
)

// missCache never hits so handler tests exercise the repository path.
type missCache struct{}

func (missCache) Get(context.Context, string) ([]domain.CartItem, error) {
	return nil, cache.ErrCacheMiss
}

func (missCache) Set(context.Context, string, []domain.CartItem) error { return nil }

func (missCache) Delete(context.Context, string) error { return nil }

type memCartRepo struct {
	m     sync.Mutex
	items []domain.CartItem
	err   error
}

func (m *memCartRepo) ListItems(_ context.Context, userID string) ([]domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.CartItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memCartRepo) AddItem(_ context.Context, item domain.CartItem) (*domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].UserID == item.UserID && m.items[i].ProductID == item.ProductID {
			m.items[i].Qty += item.Qty
			merged := m.items[i]
			return &merged, nil
		}
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, item)
	return &item, nil
}

func (m *memCartRepo) UpdateQuantity(_ context.Context, userID, itemID string, qty int) (*domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].UserID == userID && m.items[i].ID.Hex() == itemID {
			m.items[i].Qty = qty
			updated := m.items[i]
			return &updated, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (m *memCartRepo) RemoveItem(_ context.Context, userID, itemID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, item := range m.items {
		if item.UserID == userID && item.ID.Hex() == itemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (m *memCartRepo) DeleteAll(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

func (m *memCartRepo) CreateIndexes(context.Context) error { return nil }

type cartEnv struct {
	cartHandler   *CartHandler
	couponHandler *CouponHandler
	repo          *memCartRepo
	store         *pricing.MemoryCouponStore
	service       *cart.Service
}

func newCartEnv(products []*domain.Product) *cartEnv {
	repo := &memCartRepo{}
	store := pricing.NewMemoryCouponStore()
	calc := pricing.NewCalculator(pricing.DefaultRules(), store)
	svc := cart.NewService(repo, productRepoMock{products: products}, missCache{})
	v := validation.New()

	return &cartEnv{
		cartHandler:   NewCartHandler(svc, calc, v, 5*time.Second),
		couponHandler: NewCouponHandler(svc, calc, v, 5*time.Second),
		repo:          repo,
		store:         store,
		service:       svc,
	}
}

func withUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}
