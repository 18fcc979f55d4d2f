package repository

import (
	"context"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// ReserveEntry is the whole no-oversell story: the decrement and its guard
// run in a single conditional UPDATE, so two concurrent buyers of the last
// unit can never both succeed.
func (r *InventoryRepository) ReserveEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID) (int64, error) {
	const query = `
		UPDATE inventory_entries
		SET available = available - 1, sold = sold + 1
		WHERE day = $1 AND product_id = $2 AND available > 0
		RETURNING price_cents`

	var priceCents int64
	err := tx.QueryRow(ctx, query, day.Time(), productID).Scan(&priceCents)
	if err == nil {
		return priceCents, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to reserve inventory entry", err)
	}

	// Zero rows: either the day has no ledger or the product is sold out.
	var exists bool
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM inventory_entries WHERE day = $1)`
	if err := tx.QueryRow(ctx, existsQuery, day.Time()).Scan(&exists); err != nil {
		return 0, infra.WrapRepoErr("failed to check ledger existence", err)
	}
	if !exists {
		return 0, infra.WrapRepoErr("no inventory ledger for day", nil, infra.KindNotFound)
	}
	return 0, infra.WrapRepoErr("product sold out for day", nil, infra.KindConflict)
}

func (r *InventoryRepository) ReleaseEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID, priceCents int64) error {
	const query = `
		INSERT INTO inventory_entries (day, product_id, available, sold, price_cents)
		VALUES ($1, $2, 1, 0, $3)
		ON CONFLICT (day, product_id) DO UPDATE
		SET available = inventory_entries.available + 1,
		    sold = GREATEST(inventory_entries.sold - 1, 0)`

	if _, err := tx.Exec(ctx, query, day.Time(), productID, priceCents); err != nil {
		return infra.WrapRepoErr("failed to release inventory entry", err)
	}
	return nil
}

func (r *InventoryRepository) UpsertEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID, available int, priceCents int64) error {
	const query = `
		INSERT INTO inventory_entries (day, product_id, available, sold, price_cents)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (day, product_id) DO UPDATE
		SET available = EXCLUDED.available, price_cents = EXCLUDED.price_cents`

	if _, err := tx.Exec(ctx, query, day.Time(), productID, available, priceCents); err != nil {
		return infra.WrapRepoErr("failed to upsert inventory entry", err)
	}
	return nil
}

func (r *InventoryRepository) DeleteEntriesExcept(ctx context.Context, tx db.DBTX, day inventory.Day, keep []uuid.UUID) error {
	const query = `DELETE FROM inventory_entries WHERE day = $1 AND product_id != ALL($2)`

	if _, err := tx.Exec(ctx, query, day.Time(), keep); err != nil {
		return infra.WrapRepoErr("failed to trim inventory entries", err)
	}
	return nil
}
