package readstore

import (
	"context"

	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/pkg/pgconv"
	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const catalogColumns = `
	p.id, p.category_id, c.name, p.name, p.description, p.image_url,
	p.price_cents, p.unit, p.visible`

func (r *CatalogReadStore) FindAll(ctx context.Context, visibleOnly bool) ([]*queries.CatalogItem, error) {
	query := `
		SELECT ` + catalogColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE NOT $1 OR p.visible
		ORDER BY c.sort_order NULLS LAST, p.name`

	rows, err := r.db.Query(ctx, query, visibleOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog", err)
	}
	defer rows.Close()

	var items []*queries.CatalogItem
	for rows.Next() {
		var item queries.CatalogItem
		if err := rows.Scan(
			&item.ID, &item.CategoryID, &item.CategoryName, &item.Name, &item.Description,
			&item.ImageURL, &item.PriceCents, &item.Unit, &item.Visible,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog rows", err)
	}
	return items, nil
}

func (r *CatalogReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.CatalogItem, error) {
	query := `
		SELECT ` + catalogColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var item queries.CatalogItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.CategoryID, &item.CategoryName, &item.Name, &item.Description,
		&item.ImageURL, &item.PriceCents, &item.Unit, &item.Visible,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return &item, nil
}
