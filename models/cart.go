package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is owned by one user and persists across checkouts; only its items are cleared.
type Cart struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"`
	Items              []CartItem         `bson:"items" json:"items"`
	DiscountPercentage float64            `bson:"discountPercentage" json:"discountPercentage"`
	Completed          bool               `bson:"completed" json:"completed"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ResolvedCartItem is a cart line with its product loaded. Product is nil when the
// product has since been deleted; its Price is the discounted unit price.
type ResolvedCartItem struct {
	ID       primitive.ObjectID `json:"id"`
	Product  *Product           `json:"product"`
	Quantity int                `json:"quantity"`
}

type CartView struct {
	ID                 primitive.ObjectID `json:"id"`
	UserID             primitive.ObjectID `json:"userId"`
	Items              []ResolvedCartItem `json:"items"`
	DiscountPercentage float64            `json:"discountPercentage"`
	Subtotal           float64            `json:"subtotal"`
	Total              float64            `json:"total"`
	Completed          bool               `json:"completed"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required,objectid"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ApplyDiscountRequest struct {
	DiscountPercentage *float64 `json:"discountPercentage" binding:"required"`
}

type DiscountResponse struct {
	Message string    `json:"message"`
	Cart    *CartView `json:"cart"`
}

type CheckoutResponse struct {
	Message string             `json:"message"`
	OrderID primitive.ObjectID `json:"orderId"`
}
