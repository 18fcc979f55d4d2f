package request

import (
	"strings"

	"organic-storefront/internal/domain/order"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	ProductID     uuid.UUID `json:"productId" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerPhone string    `json:"customerPhone" binding:"required"`
	Note          string    `json:"note"`
}

func (r CreateOrderRequest) TrimmedNote() string {
	return strings.TrimSpace(r.Note)
}

type SubmitReceiptRequest struct {
	ReceiptURL string `json:"receiptUrl" binding:"required"`
}

type CancelOrderRequest struct {
	// Reason is optional; the plain "cancel" button sends nothing, the
	// countdown sends "timeout".
	Reason string `json:"reason"`
}

// CancelReason restricts buyer-supplied reasons to the two self-service ones.
// Admin rejection and sweep cleanup have their own endpoints.
func (r CancelOrderRequest) CancelReason() (order.CancelReason, bool) {
	switch r.Reason {
	case "", order.CancelReasonUserCancelled.String():
		return order.CancelReasonUserCancelled, true
	case order.CancelReasonTimeout.String():
		return order.CancelReasonTimeout, true
	default:
		return "", false
	}
}
