package cart

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreyat81/e-com-mart/internal/cache"
	"github.com/shreyat81/e-com-mart/internal/catalog"
	"github.com/shreyat81/e-com-mart/internal/domain"
)

type mockRepository struct {
	m     sync.RWMutex
	items []domain.CartItem
	err   error
}

func (m *mockRepository) ListItems(_ context.Context, userID string) ([]domain.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
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

func (m *mockRepository) AddItem(_ context.Context, item domain.CartItem) (*domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].UserID == item.UserID && m.items[i].ProductID == item.ProductID {
			m.items[i].Qty += item.Qty
			m.items[i].UpdatedAt = time.Now()
			merged := m.items[i]
			return &merged, nil
		}
	}
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	m.items = append(m.items, item)
	return &item, nil
}

func (m *mockRepository) UpdateQuantity(_ context.Context, userID, itemID string, qty int) (*domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].UserID == userID && m.items[i].ID.Hex() == itemID {
			m.items[i].Qty = qty
			m.items[i].UpdatedAt = time.Now()
			updated := m.items[i]
			return &updated, nil
		}
	}
	return nil, ErrItemNotFound
}

func (m *mockRepository) RemoveItem(_ context.Context, userID, itemID string) error {
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
	return ErrItemNotFound
}

func (m *mockRepository) DeleteAll(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

func (m *mockRepository) CreateIndexes(context.Context) error {
	return nil
}

type mockCatalog struct {
	m        sync.RWMutex
	products map[int64]*domain.Product
}

func (m *mockCatalog) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func (m *mockCatalog) GetByIDs(_ context.Context, ids []int64) ([]*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalog) remove(id int64) {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.products, id)
}

type mockCache struct {
	m      sync.RWMutex
	data   map[string][]domain.CartItem
	getErr error
	setErr error
	delErr error
}

func (m *mockCache) Get(_ context.Context, userID string) ([]domain.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	items, ok := m.data[userID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return items, nil
}

func (m *mockCache) Set(_ context.Context, userID string, items []domain.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[userID] = items
	return nil
}

func (m *mockCache) Delete(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, userID)
	return nil
}

func (m *mockCache) seed(userID string, items []domain.CartItem) {
	m.m.Lock()
	defer m.m.Unlock()
	m.data[userID] = items
}

func (m *mockCache) peek(userID string) ([]domain.CartItem, bool) {
	m.m.RLock()
	defer m.m.RUnlock()
	items, ok := m.data[userID]
	return items, ok
}
