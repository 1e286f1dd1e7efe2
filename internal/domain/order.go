package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a by-value snapshot of a cart line. Later catalog edits must
// not alter historical orders, so nothing here references the products
// collection.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

type Order struct {
	ID            uuid.UUID
	UserID        string
	CustomerName  string
	CustomerEmail string
	Items         []OrderItem
	Subtotal      float64
	Discount      float64
	Total         float64
	AppliedCoupon string // empty when checkout ran without a coupon
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
