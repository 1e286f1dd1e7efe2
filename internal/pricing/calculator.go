package pricing

import (
	"math"
	"strings"

	"github.com/shreyat81/e-com-mart/internal/domain"
)

// Totals is the computed pricing summary for a cart. All currency figures
// are rounded to two decimal places.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	AppliedCoupon string  `json:"appliedCoupon,omitempty"`
}

// Calculator computes cart totals against the static coupon table and the
// per-user applied-coupon association.
type Calculator struct {
	rules   map[string]CouponRule
	applied AppliedCouponStore
}

func NewCalculator(rules map[string]CouponRule, applied AppliedCouponStore) *Calculator {
	return &Calculator{rules: rules, applied: applied}
}

// Totals computes subtotal, discount and total for the given cart lines.
// A coupon below its minimum-order threshold stays applied but contributes
// no discount.
func (c *Calculator) Totals(userID string, lines []domain.CartLine) Totals {
	sub := subtotal(lines)

	var discount float64
	var appliedCode string
	if code, ok := c.applied.Get(userID); ok {
		appliedCode = code
		if rule, found := c.rules[code]; found && sub >= rule.MinOrder {
			switch rule.Type {
			case CouponPercentage:
				discount = sub * rule.Value / 100
			case CouponFixed:
				discount = rule.Value
			case CouponShipping:
				// Shipping waivers are informational; no shipping-fee line
				// item exists in the totals.
			}
		}
	}

	if discount > sub {
		discount = sub
	}

	return Totals{
		Subtotal:      round2(sub),
		Discount:      round2(discount),
		Total:         round2(sub - discount),
		AppliedCoupon: appliedCode,
	}
}

// Apply associates the coupon code with the user, overwriting any prior
// association, and returns fresh totals. The code is matched
// case-insensitively against the static table.
func (c *Calculator) Apply(userID, code string, lines []domain.CartLine) (Totals, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Totals{}, ErrCouponRequired
	}

	rule, ok := c.rules[code]
	if !ok {
		return Totals{}, ErrCouponUnknown
	}

	if sub := subtotal(lines); sub < rule.MinOrder {
		return Totals{}, &MinOrderError{Code: code, MinOrder: rule.MinOrder}
	}

	c.applied.Set(userID, code)
	return c.Totals(userID, lines), nil
}

// Remove clears the user's coupon association unconditionally and returns
// fresh totals. Removing when no coupon is applied is not an error.
func (c *Calculator) Remove(userID string, lines []domain.CartLine) Totals {
	c.applied.Clear(userID)
	return c.Totals(userID, lines)
}

func subtotal(lines []domain.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Qty)
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
