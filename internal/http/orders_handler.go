package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/orders"
)

type OrdersHandler struct {
	orders  orders.OrderRepository
	timeout time.Duration
}

func NewOrdersHandler(repo orders.OrderRepository, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  repo,
		timeout: timeout,
	}
}

type OrderDTO struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Items         []domain.OrderItem `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	AppliedCoupon string             `json:"appliedCoupon,omitempty"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type OrderResponse struct {
	Success bool     `json:"success"`
	Order   OrderDTO `json:"order"`
}

type OrdersResponse struct {
	Success bool       `json:"success"`
	Orders  []OrderDTO `json:"orders"`
}

// GET /api/orders/{id}
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "error fetching order")
		return
	}

	respondJSON(w, http.StatusOK, OrderResponse{Success: true, Order: toOrderDTO(order)})
}

// GET /api/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	list, err := h.orders.ListByUser(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching orders")
		return
	}

	dtos := make([]OrderDTO, len(list))
	for i, o := range list {
		dtos[i] = toOrderDTO(o)
	}

	respondJSON(w, http.StatusOK, OrdersResponse{Success: true, Orders: dtos})
}

func toOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         o.Items,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		AppliedCoupon: o.AppliedCoupon,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}
