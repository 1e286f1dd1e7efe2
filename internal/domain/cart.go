package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line item in a user's cart. The price is captured when the
// item is first added and is not re-read from the catalog on later views.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"-"`
	ProductID int64              `bson:"product_id" json:"productId"`
	Qty       int                `bson:"qty" json:"qty"`
	Price     float64            `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`
}

// CartLine is a cart item joined with catalog data for display.
type CartLine struct {
	ID           string  `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
}
