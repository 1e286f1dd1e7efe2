package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/events"
	"github.com/shreyat81/e-com-mart/internal/orders"
	"github.com/shreyat81/e-com-mart/internal/pricing"
)

var (
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
	ErrMissingCustomer = errors.New("name and email are required")
)

// CartReader is the slice of the cart service checkout depends on.
type CartReader interface {
	Lines(ctx context.Context, userID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID string) error
}

type Request struct {
	UserID string
	Name   string
	Email  string
}

// Receipt is the denormalized summary returned for display after checkout.
type Receipt struct {
	OrderID       uuid.UUID          `json:"orderId"`
	Total         float64            `json:"total"`
	CreatedAt     time.Time          `json:"timestamp"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	ItemCount     int                `json:"itemCount"`
	Items         []domain.OrderItem `json:"items"`
}

type Service interface {
	Checkout(ctx context.Context, req *Request) (*Receipt, error)
}

type ServiceImpl struct {
	cart    CartReader
	orders  orders.OrderRepository
	calc    *pricing.Calculator
	coupons pricing.AppliedCouponStore
	events  events.Publisher
}

func NewService(
	cart CartReader,
	orderRepo orders.OrderRepository,
	calc *pricing.Calculator,
	coupons pricing.AppliedCouponStore,
	publisher events.Publisher,
) *ServiceImpl {
	return &ServiceImpl{
		cart:    cart,
		orders:  orderRepo,
		calc:    calc,
		coupons: coupons,
		events:  publisher,
	}
}

// Checkout snapshots the user's cart into an order, then clears the cart and
// the applied-coupon association. The caller never observes a persisted
// order alongside a surviving cart: if the cart clear fails, the freshly
// inserted order is deleted again and the checkout fails.
func (s *ServiceImpl) Checkout(ctx context.Context, req *Request) (*Receipt, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrMissingCustomer
	}

	lines, err := s.cart.Lines(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.calc.Totals(req.UserID, lines)

	items := make([]domain.OrderItem, len(lines))
	itemCount := 0
	for i, l := range lines {
		items[i] = domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.ProductName,
			Price:     l.Price,
			Qty:       l.Qty,
		}
		itemCount += l.Qty
	}

	order := &domain.Order{
		ID:            uuid.New(),
		UserID:        req.UserID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		AppliedCoupon: totals.AppliedCoupon,
		Status:        domain.OrderStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cart.Clear(ctx, req.UserID); err != nil {
		// Compensate: without the cart clear the checkout did not happen.
		if delErr := s.orders.Delete(ctx, order.ID); delErr != nil {
			log.Printf("failed to delete order %s after cart clear failure: %v", order.ID, delErr)
		}
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.coupons.Clear(req.UserID)

	s.publishConfirmed(ctx, order)

	return &Receipt{
		OrderID:       order.ID,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		ItemCount:     itemCount,
		Items:         items,
	}, nil
}

// publishConfirmed is best effort: a broker outage must not fail a checkout
// that is already persisted.
func (s *ServiceImpl) publishConfirmed(ctx context.Context, order *domain.Order) {
	eventItems := make([]events.OrderItem, len(order.Items))
	for i, item := range order.Items {
		eventItems[i] = events.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Qty,
			UnitPrice:   item.Price,
		}
	}

	event := &events.OrderConfirmed{
		OrderID:       order.ID.String(),
		UserID:        order.UserID,
		CustomerEmail: order.CustomerEmail,
		Items:         eventItems,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		TotalAmount:   order.Total,
		Coupon:        order.AppliedCoupon,
		Currency:      "INR",
	}

	if err := s.events.PublishOrderConfirmed(ctx, event); err != nil {
		log.Printf("failed to publish order confirmed event for %s: %v", order.ID, err)
	}
}
