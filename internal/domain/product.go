package domain

import "time"

// ShippingInfo is the per-product delivery blurb shown on the details page.
type ShippingInfo struct {
	EstimatedDelivery string  `bson:"estimated_delivery" json:"estimatedDelivery"`
	Charges           float64 `bson:"charges" json:"charges"`
	ReturnPolicy      string  `bson:"return_policy" json:"returnPolicy"`
}

type Product struct {
	ID             int64             `bson:"id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Price          float64           `bson:"price" json:"price"`
	Image          string            `bson:"image" json:"image"`
	Description    string            `bson:"description,omitempty" json:"description,omitempty"`
	Category       string            `bson:"category" json:"category"`
	Type           string            `bson:"type,omitempty" json:"type,omitempty"`
	Brand          string            `bson:"brand,omitempty" json:"brand,omitempty"`
	Rating         float64           `bson:"rating" json:"rating"`
	Reviews        int               `bson:"reviews" json:"reviews"`
	InStock        bool              `bson:"in_stock" json:"inStock"`
	Specifications map[string]string `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Shipping       *ShippingInfo     `bson:"shipping,omitempty" json:"shipping,omitempty"`
	Offers         []string          `bson:"offers,omitempty" json:"offers,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"-"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"-"`
}
