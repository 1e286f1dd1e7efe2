package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/events"
	"github.com/shreyat81/e-com-mart/internal/orders"
)

type mockCart struct {
	m        sync.Mutex
	lines    []domain.CartLine
	linesErr error
	clearErr error
	cleared  bool
}

func (m *mockCart) Lines(context.Context, string) ([]domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.linesErr != nil {
		return nil, m.linesErr
	}
	return m.lines, nil
}

func (m *mockCart) Clear(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	m.lines = nil
	return nil
}

type mockOrderRepo struct {
	m         sync.Mutex
	created   []*domain.Order
	deleted   []uuid.UUID
	createErr error
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, o := range m.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, orders.ErrOrderNotFound
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []*domain.Order
	for _, o := range m.created {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deleted = append(m.deleted, id)
	for i, o := range m.created {
		if o.ID == id {
			m.created = append(m.created[:i], m.created[i+1:]...)
			break
		}
	}
	return nil
}

type mockPublisher struct {
	m          sync.Mutex
	events     []*events.OrderConfirmed
	publishErr error
}

func (m *mockPublisher) PublishOrderConfirmed(_ context.Context, event *events.OrderConfirmed) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) Close() error { return nil }
