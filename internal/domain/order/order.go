package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"organic-storefront/internal/domain/inventory"
)

var (
	ErrAlreadyFinalized  = errors.New("order already finalized")
	ErrInvalidTransition = errors.New("invalid order state transition")
	ErrReceiptRequired   = errors.New("receipt url is required")
	ErrReasonRequired    = errors.New("cancellation reason is invalid")
)

// Order is a single-unit reservation for one product on one delivery day.
// All state changes go through the transition methods so the status machine
// cannot be bypassed by callers.
type Order struct {
	id            uuid.UUID
	productID     uuid.UUID
	day           inventory.Day
	priceCents    int64
	status        Status
	receiptURL    *string
	cancelReason  *CancelReason
	customerName  string
	customerPhone string
	note          string
	createdAt     time.Time
	updatedAt     time.Time
	verifiedAt    *time.Time
	cancelledAt   *time.Time
}

func NewOrder(productID uuid.UUID, day inventory.Day, priceCents int64, customerName, customerPhone, note string, now time.Time) *Order {
	return &Order{
		id:            uuid.New(),
		productID:     productID,
		day:           day,
		priceCents:    priceCents,
		status:        StatusReserved,
		customerName:  customerName,
		customerPhone: customerPhone,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructOrder(
	id, productID uuid.UUID,
	day inventory.Day,
	priceCents int64,
	status Status,
	receiptURL *string,
	cancelReason *CancelReason,
	customerName, customerPhone, note string,
	createdAt, updatedAt time.Time,
	verifiedAt, cancelledAt *time.Time,
) *Order {
	return &Order{
		id:            id,
		productID:     productID,
		day:           day,
		priceCents:    priceCents,
		status:        status,
		receiptURL:    receiptURL,
		cancelReason:  cancelReason,
		customerName:  customerName,
		customerPhone: customerPhone,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		verifiedAt:    verifiedAt,
		cancelledAt:   cancelledAt,
	}
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) ProductID() uuid.UUID        { return o.productID }
func (o *Order) Day() inventory.Day          { return o.day }
func (o *Order) PriceCents() int64           { return o.priceCents }
func (o *Order) Status() Status              { return o.status }
func (o *Order) ReceiptURL() *string         { return o.receiptURL }
func (o *Order) CancelReason() *CancelReason { return o.cancelReason }
func (o *Order) CustomerName() string        { return o.customerName }
func (o *Order) CustomerPhone() string       { return o.customerPhone }
func (o *Order) Note() string                { return o.note }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Order) VerifiedAt() *time.Time      { return o.verifiedAt }
func (o *Order) CancelledAt() *time.Time     { return o.cancelledAt }

// SubmitReceipt attaches the payment proof and moves the order to
// pending_verification. Only a freshly reserved order may take a receipt.
func (o *Order) SubmitReceipt(url string, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if o.status != StatusReserved {
		return ErrInvalidTransition
	}
	if url == "" {
		return ErrReceiptRequired
	}
	o.receiptURL = &url
	o.status = StatusPendingVerification
	o.updatedAt = now
	return nil
}

// Verify marks a receipt-bearing order as paid.
func (o *Order) Verify(now time.Time) error {
	if o.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if o.status != StatusPendingVerification {
		return ErrInvalidTransition
	}
	o.status = StatusPaid
	o.verifiedAt = &now
	o.updatedAt = now
	return nil
}

// Cancel finalizes the order with a reason. Stock held by the order must be
// released in the same transaction by the caller; HoldsStock reports whether
// the pre-cancel status still held a unit.
func (o *Order) Cancel(reason CancelReason, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if !reason.IsValid() {
		return ErrReasonRequired
	}
	o.status = StatusCancelled
	o.cancelReason = &reason
	o.cancelledAt = &now
	o.updatedAt = now
	return nil
}
