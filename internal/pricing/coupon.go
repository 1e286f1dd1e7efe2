package pricing

import (
	"errors"
	"fmt"
)

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
	CouponShipping   CouponType = "shipping"
)

// CouponRule is a static discount policy. The table is hardcoded, not
// persisted, and not user-editable.
type CouponRule struct {
	Code     string
	Type     CouponType
	Value    float64
	MinOrder float64
}

var (
	ErrCouponRequired = errors.New("coupon code is required")
	ErrCouponUnknown  = errors.New("invalid coupon code")
)

// MinOrderError reports a coupon rejected because the cart subtotal is below
// the rule's threshold.
type MinOrderError struct {
	Code     string
	MinOrder float64
}

func (e *MinOrderError) Error() string {
	return fmt.Sprintf("minimum order value of ₹%.0f required for coupon %s", e.MinOrder, e.Code)
}

// DefaultRules is the storefront coupon table (INR amounts).
func DefaultRules() map[string]CouponRule {
	return map[string]CouponRule{
		"FLAT10":   {Code: "FLAT10", Type: CouponPercentage, Value: 10, MinOrder: 1000},
		"NEWUSER":  {Code: "NEWUSER", Type: CouponPercentage, Value: 15, MinOrder: 5000},
		"SAVE50":   {Code: "SAVE50", Type: CouponFixed, Value: 500, MinOrder: 10000},
		"FREESHIP": {Code: "FREESHIP", Type: CouponShipping, Value: 0, MinOrder: 0},
	}
}
