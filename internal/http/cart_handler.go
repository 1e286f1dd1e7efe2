package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/shreyat81/e-com-mart/internal/cart"
	"github.com/shreyat81/e-com-mart/internal/catalog"
	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/pricing"
	"github.com/shreyat81/e-com-mart/internal/validation"
)

type CartHandler struct {
	cart     *cart.Service
	calc     *pricing.Calculator
	validate *validatorv10.Validate
	timeout  time.Duration
}

func NewCartHandler(cartSvc *cart.Service, calc *pricing.Calculator, v *validatorv10.Validate, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:     cartSvc,
		calc:     calc,
		validate: v,
		timeout:  timeout,
	}
}

type CartResponse struct {
	Success       bool              `json:"success"`
	Cart          []domain.CartLine `json:"cart"`
	Subtotal      float64           `json:"subtotal"`
	Discount      float64           `json:"discount"`
	Total         float64           `json:"total"`
	AppliedCoupon string            `json:"appliedCoupon,omitempty"`
	ItemCount     int               `json:"itemCount"`
}

type CartItemResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	CartItem *domain.CartItem `json:"cartItem"`
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	lines, err := h.cart.Lines(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching cart")
		return
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}

	totals := h.calc.Totals(userID, lines)

	itemCount := 0
	for _, l := range lines {
		itemCount += l.Qty
	}

	respondJSON(w, http.StatusOK, CartResponse{
		Success:       true,
		Cart:          lines,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		AppliedCoupon: totals.AppliedCoupon,
		ItemCount:     itemCount,
	})
}

// POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	var req validation.AddCartItemRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		respondError(w, http.StatusBadRequest, "productId and qty are required and qty must be greater than 0")
		return
	}

	item, err := h.cart.Add(ctx, userID, req.ProductID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "quantity must be greater than 0")
		default:
			respondError(w, http.StatusInternalServerError, "error adding to cart")
		}
		return
	}

	respondJSON(w, http.StatusCreated, CartItemResponse{
		Success:  true,
		Message:  "Item added to cart",
		CartItem: item,
	})
}

// PUT /api/cart/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	var req validation.UpdateCartItemRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		respondError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	item, err := h.cart.UpdateQuantity(ctx, userID, itemID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			respondError(w, http.StatusNotFound, "cart item not found")
		case errors.Is(err, cart.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "quantity must be at least 1")
		default:
			respondError(w, http.StatusInternalServerError, "error updating cart")
		}
		return
	}

	respondJSON(w, http.StatusOK, CartItemResponse{
		Success:  true,
		Message:  "Cart updated",
		CartItem: item,
	})
}

// DELETE /api/cart/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	if err := h.cart.Remove(ctx, userID, itemID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "cart item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "error removing from cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Item removed from cart",
	})
}
