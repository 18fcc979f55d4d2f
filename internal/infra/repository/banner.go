package repository

import (
	"context"
	"time"

	"organic-storefront/internal/domain/banner"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"

	"github.com/google/uuid"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) Create(ctx context.Context, tx db.DBTX, b *banner.Banner) error {
	const query = `
		INSERT INTO banners (
			id, title, image_url, link_url, sort_order, active,
			start_at, end_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.Title(), b.ImageURL(), b.LinkURL(), b.SortOrder(), b.Active(),
		b.StartAt(), b.EndAt(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create banner", err)
	}
	return nil
}

func (r *BannerRepository) Update(ctx context.Context, tx db.DBTX, b *banner.Banner) error {
	const query = `
		UPDATE banners
		SET title = $1, image_url = $2, link_url = $3, sort_order = $4,
		    active = $5, start_at = $6, end_at = $7, updated_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		b.Title(), b.ImageURL(), b.LinkURL(), b.SortOrder(),
		b.Active(), b.StartAt(), b.EndAt(), b.UpdatedAt(), b.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BannerRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool, updatedAt time.Time) error {
	const query = `UPDATE banners SET active = $1, updated_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, active, updatedAt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to set banner active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}
