package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
}

type Payment struct {
	Status        string     `bson:"status" json:"status"`
	TransactionID string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus        `bson:"status" json:"status"`
	Completed   bool               `bson:"completed" json:"completed"`
	Payment     Payment            `bson:"payment" json:"payment"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	CancelledAt *time.Time         `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}

type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required,objectid"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	UserID      string             `json:"userId" binding:"required,objectid"`
	Items       []OrderItemRequest `json:"items" binding:"dive"`
	TotalAmount float64            `json:"totalAmount"`
}

type UpdateOrderRequest struct {
	Status      *OrderStatus       `json:"status"`
	Items       []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	TotalAmount *float64           `json:"totalAmount"`
	Completed   *bool              `json:"completed"`
}

type PaymentResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
}

type OrderAnalytics struct {
	TotalOrders        int64   `json:"totalOrders"`
	AverageOrderAmount float64 `json:"averageOrderAmount"`
	HighestOrderAmount float64 `json:"highestOrderAmount"`
	LowestOrderAmount  float64 `json:"lowestOrderAmount"`
}

type RevenueAnalytics struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	HighestRevenue float64 `json:"highestRevenue"`
	LowestRevenue  float64 `json:"lowestRevenue"`
}

type Invoice struct {
	OrderID     primitive.ObjectID `json:"orderId"`
	OrderDate   time.Time          `json:"orderDate"`
	TotalAmount float64            `json:"totalAmount"`
	Items       []OrderItem        `json:"items"`
	Status      OrderStatus        `json:"status"`
}

type Shipment struct {
	OrderID        primitive.ObjectID `json:"orderId"`
	Status         string             `json:"status"`
	TrackingNumber string             `json:"trackingNumber"`
}
