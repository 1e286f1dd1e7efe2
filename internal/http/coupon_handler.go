package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/shreyat81/e-com-mart/internal/cart"
	"github.com/shreyat81/e-com-mart/internal/pricing"
	"github.com/shreyat81/e-com-mart/internal/validation"
)

type CouponHandler struct {
	cart     *cart.Service
	calc     *pricing.Calculator
	validate *validatorv10.Validate
	timeout  time.Duration
}

func NewCouponHandler(cartSvc *cart.Service, calc *pricing.Calculator, v *validatorv10.Validate, timeout time.Duration) *CouponHandler {
	return &CouponHandler{
		cart:     cartSvc,
		calc:     calc,
		validate: v,
		timeout:  timeout,
	}
}

type CouponResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	CouponCode    string  `json:"couponCode,omitempty"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	AppliedCoupon string  `json:"appliedCoupon,omitempty"`
}

// POST /api/cart/apply-coupon
func (h *CouponHandler) Apply(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	var req validation.ApplyCouponRequest
	if err := validation.DecodeAndValidate(r, &req, h.validate); err != nil {
		respondError(w, http.StatusBadRequest, "coupon code is required")
		return
	}

	lines, err := h.cart.Lines(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error applying coupon")
		return
	}

	totals, err := h.calc.Apply(userID, req.CouponCode, lines)
	if err != nil {
		var minOrderErr *pricing.MinOrderError
		switch {
		case errors.Is(err, pricing.ErrCouponRequired):
			respondError(w, http.StatusBadRequest, "coupon code is required")
		case errors.Is(err, pricing.ErrCouponUnknown):
			respondError(w, http.StatusBadRequest, "invalid coupon code")
		case errors.As(err, &minOrderErr):
			respondError(w, http.StatusBadRequest, minOrderErr.Error())
		default:
			respondError(w, http.StatusInternalServerError, "error applying coupon")
		}
		return
	}

	respondJSON(w, http.StatusOK, CouponResponse{
		Success:       true,
		Message:       "Coupon applied successfully",
		CouponCode:    totals.AppliedCoupon,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Total:         totals.Total,
		AppliedCoupon: totals.AppliedCoupon,
	})
}

// DELETE /api/cart/coupon/remove
func (h *CouponHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())

	// Removal is unconditional: a cart read failure must not leave the
	// coupon applied.
	totals := h.calc.Remove(userID, nil)

	if lines, err := h.cart.Lines(ctx, userID); err == nil {
		totals = h.calc.Totals(userID, lines)
	}

	respondJSON(w, http.StatusOK, CouponResponse{
		Success:  true,
		Message:  "Coupon removed",
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Total:    totals.Total,
	})
}
