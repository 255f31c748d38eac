package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle event emitted after commit.
type OrderEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventType   string    `json:"event_type"`           // e.g. "order.created"
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	LineCount   int       `json:"line_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue. Publishing is best-effort: it runs after the transaction
// commits and a failure never affects the persisted order.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
