package repository

import (
	"context"

	"organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *catalog.Product) error {
	const query = `
		INSERT INTO products (
			id, category_id, name, description, image_url,
			price_cents, unit, visible, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		p.ID(), p.CategoryID(), p.Name(), p.Description(), p.ImageURL(),
		p.PriceCents(), p.Unit(), p.Visible(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *catalog.Product) error {
	const query = `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, image_url = $4,
		    price_cents = $5, unit = $6, visible = $7, updated_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		p.CategoryID(), p.Name(), p.Description(), p.ImageURL(),
		p.PriceCents(), p.Unit(), p.Visible(), p.UpdatedAt(), p.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
