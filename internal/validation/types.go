package validation

// AddCartItemRequest is the payload for POST /api/cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Qty       int   `json:"qty" validate:"required,gt=0"`
}

// UpdateCartItemRequest is the payload for PUT /api/cart/{id}.
type UpdateCartItemRequest struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

// ApplyCouponRequest is the payload for POST /api/cart/apply-coupon.
type ApplyCouponRequest struct {
	CouponCode string `json:"couponCode" validate:"required"`
}

// CheckoutRequest is the payload for POST /api/cart/checkout.
type CheckoutRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
