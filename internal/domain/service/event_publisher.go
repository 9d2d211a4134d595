package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event published for async processing
// (confirmation mail, fulfilment, analytics).
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	TotalAmount string `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// Order event types.
const (
	OrderEventCreated = "order.created"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
