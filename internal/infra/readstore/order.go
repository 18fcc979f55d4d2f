package readstore

import (
	"context"
	"log/slog"
	"time"

	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/pkg/pgconv"
	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderViewColumns = `
	o.id, o.product_id, p.name, o.day, o.status, o.price_cents,
	o.receipt_url, o.cancel_reason, o.customer_name, o.customer_phone, o.note,
	o.created_at, o.updated_at, o.verified_at, o.cancelled_at`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	query := `
		SELECT ` + orderViewColumns + `
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	return view, nil
}

func (r *OrderReadStore) List(ctx context.Context, status *string, limit int32) ([]*queries.OrderListItem, error) {
	query := `
		SELECT o.id, o.product_id, p.name, o.day, o.status, o.price_cents, o.customer_name, o.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE ($1::text IS NULL OR o.status = $1)
		ORDER BY o.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			item queries.OrderListItem
			day  time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName, &day,
			&item.Status, &item.PriceCents, &item.CustomerName, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		item.Day = day.Format("2006-01-02")
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

// FindHeldBefore returns stock-holding orders created before the cutoff.
// The age filter normally runs server-side; if that query fails (an
// environment missing the composite status/created_at index), it degrades to
// a status-only scan filtered in process.
func (r *OrderReadStore) FindHeldBefore(ctx context.Context, cutoff time.Time) ([]*queries.OrderView, error) {
	query := `
		SELECT ` + orderViewColumns + `
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status IN ('reserved', 'pending_verification') AND o.created_at < $1
		ORDER BY o.created_at`

	views, err := r.queryOrderViews(ctx, query, cutoff)
	if err == nil {
		return views, nil
	}

	slog.Warn("filtered expiry query failed, falling back to status-only scan", "error", err.Error())

	fallback := `
		SELECT ` + orderViewColumns + `
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status IN ('reserved', 'pending_verification')
		ORDER BY o.created_at`

	all, err := r.queryOrderViews(ctx, fallback)
	if err != nil {
		return nil, err
	}
	var aged []*queries.OrderView
	for _, v := range all {
		if v.CreatedAt.Before(cutoff) {
			aged = append(aged, v)
		}
	}
	return aged, nil
}

func (r *OrderReadStore) queryOrderViews(ctx context.Context, query string, args ...any) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order views", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		view queries.OrderView
		day  time.Time
	)
	err := row.Scan(
		&view.ID, &view.ProductID, &view.ProductName, &day, &view.Status, &view.PriceCents,
		&view.ReceiptURL, &view.CancelReason, &view.CustomerName, &view.CustomerPhone, &view.Note,
		&view.CreatedAt, &view.UpdatedAt, &view.VerifiedAt, &view.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	view.Day = day.Format("2006-01-02")
	return &view, nil
}
