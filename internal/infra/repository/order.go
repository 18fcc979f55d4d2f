package repository

import (
	"context"

	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	const query = `
		INSERT INTO orders (
			id, product_id, day, price_cents, status,
			receipt_url, cancel_reason, customer_name, customer_phone, note,
			created_at, updated_at, verified_at, cancelled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var reason *string
	if o.CancelReason() != nil {
		s := o.CancelReason().String()
		reason = &s
	}

	_, err := tx.Exec(ctx, query,
		o.ID(), o.ProductID(), o.Day().Time(), o.PriceCents(), o.Status().String(),
		o.ReceiptURL(), reason, o.CustomerName(), o.CustomerPhone(), o.Note(),
		o.CreatedAt(), o.UpdatedAt(), o.VerifiedAt(), o.CancelledAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

// UpdateState writes status, receipt and cancel reason, but only if the row
// still carries the status the caller loaded. Zero rows affected means a
// concurrent transition won and is reported as CONFLICT.
func (r *OrderRepository) UpdateState(ctx context.Context, tx db.DBTX, o *order.Order, loaded order.Status) error {
	const query = `
		UPDATE orders
		SET status = $1, receipt_url = $2, cancel_reason = $3, updated_at = $4,
		    verified_at = $5, cancelled_at = $6
		WHERE id = $7 AND status = $8`

	var reason *string
	if o.CancelReason() != nil {
		s := o.CancelReason().String()
		reason = &s
	}

	tag, err := tx.Exec(ctx, query,
		o.Status().String(), o.ReceiptURL(), reason, o.UpdatedAt(),
		o.VerifiedAt(), o.CancelledAt(),
		o.ID(), loaded.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order state changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
