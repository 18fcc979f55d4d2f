package readstore

import (
	"context"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/usecase/queries"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

// FindByDay returns the day's ledger entries with product names. A day that
// was never stocked is NOT_FOUND; a stocked day with every unit sold still
// returns its rows.
func (r *InventoryReadStore) FindByDay(ctx context.Context, day inventory.Day) ([]*queries.InventoryEntryView, error) {
	const query = `
		SELECT e.product_id, p.name, e.available, e.sold, e.price_cents
		FROM inventory_entries e
		JOIN products p ON p.id = e.product_id
		WHERE e.day = $1
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, query, day.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get inventory by day", err)
	}
	defer rows.Close()

	var entries []*queries.InventoryEntryView
	for rows.Next() {
		var entry queries.InventoryEntryView
		if err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.Available, &entry.Sold, &entry.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory entry", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory entries", err)
	}

	if len(entries) == 0 {
		return nil, infra.WrapRepoErr("no inventory ledger for day", nil, infra.KindNotFound)
	}
	return entries, nil
}
