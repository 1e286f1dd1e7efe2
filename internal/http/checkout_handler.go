package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/shreyat81/e-com-mart/internal/checkout"
	"github.com/shreyat81/e-com-mart/internal/validation"
)

type CheckoutHandler struct {
	service  checkout.Service
	validate *validatorv10.Validate
	timeout  time.Duration
}

func NewCheckoutHandler(service checkout.Service, v *validatorv10.Validate, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: v,
		timeout:  timeout,
	}
}

type CheckoutResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	OrderID      string            `json:"orderId"`
	Total        float64           `json:"total"`
	Timestamp    time.Time         `json:"timestamp"`
	OrderDetails *checkout.Receipt `json:"orderDetails"`
}

// POST /api/cart/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	var req validation.CheckoutRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		respondError(w, http.StatusBadRequest, "name and a valid email are required")
		return
	}

	receipt, err := h.service.Checkout(ctx, &checkout.Request{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "cart is empty")
		case errors.Is(err, checkout.ErrMissingCustomer):
			respondError(w, http.StatusBadRequest, "name and email are required")
		default:
			respondError(w, http.StatusInternalServerError, "error processing checkout")
		}
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponse{
		Success:      true,
		Message:      "Checkout successful",
		OrderID:      receipt.OrderID.String(),
		Total:        receipt.Total,
		Timestamp:    receipt.CreatedAt,
		OrderDetails: receipt,
	})
}
