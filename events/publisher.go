package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderCreated   = "order.created"
	OrderPaid      = "order.paid"
	OrderCancelled = "order.cancelled"
)

// OrderEvent is the payload published for every order lifecycle change.
type OrderEvent struct {
	EventID     string             `json:"eventId"`
	Type        string             `json:"type"`
	OrderID     primitive.ObjectID `json:"orderId"`
	UserID      primitive.ObjectID `json:"userId"`
	TotalAmount float64            `json:"totalAmount"`
	Status      string             `json:"status"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

func NewOrderEvent(eventType string, orderID, userID primitive.ObjectID, total float64, status string) OrderEvent {
	return OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     orderID,
		UserID:      userID,
		TotalAmount: total,
		Status:      status,
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher delivers order events to a broker.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, evt OrderEvent) error
	Close() error
}

func encode(evt OrderEvent) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}
	return data, nil
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }
func (NoopPublisher) Close() error                                      { return nil }
