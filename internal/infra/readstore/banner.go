package readstore

import (
	"context"

	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/pkg/pgconv"
	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type BannerReadStore struct {
	db db.DBTX
}

func NewBannerReadStore(dbtx db.DBTX) *BannerReadStore {
	return &BannerReadStore{db: dbtx}
}

const bannerColumns = `id, title, image_url, link_url, sort_order, active, start_at, end_at, created_at, updated_at`

func (r *BannerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BannerView, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`

	var view queries.BannerView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Title, &view.ImageURL, &view.LinkURL, &view.SortOrder,
		&view.Active, &view.StartAt, &view.EndAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("banner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get banner by id", err)
	}
	return &view, nil
}

func (r *BannerReadStore) FindAll(ctx context.Context) ([]*queries.BannerView, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners ORDER BY sort_order, created_at`
	return r.queryBanners(ctx, query)
}

func (r *BannerReadStore) FindActive(ctx context.Context) ([]*queries.BannerView, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE active ORDER BY sort_order, created_at`
	return r.queryBanners(ctx, query)
}

func (r *BannerReadStore) queryBanners(ctx context.Context, query string) ([]*queries.BannerView, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list banners", err)
	}
	defer rows.Close()

	var views []*queries.BannerView
	for rows.Next() {
		var view queries.BannerView
		if err := rows.Scan(
			&view.ID, &view.Title, &view.ImageURL, &view.LinkURL, &view.SortOrder,
			&view.Active, &view.StartAt, &view.EndAt, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan banner row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate banner rows", err)
	}
	return views, nil
}
