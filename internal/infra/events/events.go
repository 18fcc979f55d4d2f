package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order lifecycle event types.
const (
	TypeOrderReserved  = "order.reserved"
	TypeOrderPending   = "order.pending_verification"
	TypeOrderPaid      = "order.paid"
	TypeOrderCancelled = "order.cancelled"
)

// OrderEvent is the envelope published on every order transition. Consumers
// key on OrderID so per-order ordering survives partitioning.
type OrderEvent struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	OrderID      uuid.UUID `json:"order_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Day          string    `json:"day"`
	Status       string    `json:"status"`
	CancelReason *string   `json:"cancel_reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewOrderEvent(eventType string, orderID, productID uuid.UUID, day, status string, cancelReason *string, at time.Time) OrderEvent {
	return OrderEvent{
		ID:           uuid.New(),
		Type:         eventType,
		OrderID:      orderID,
		ProductID:    productID,
		Day:          day,
		Status:       status,
		CancelReason: cancelReason,
		OccurredAt:   at,
	}
}

// Publisher delivers order events to interested consumers. Publishing is
// best-effort: a failed publish never rolls back the transition that caused
// it.
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent)
}

type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) Publish(context.Context, OrderEvent) {}
