package queries

import (
	"context"

	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/shared"
)

type BannerQueries interface {
	// ListActive reconciles schedule windows against the current time before
	// returning, so a banner whose window just opened appears without any
	// separate scheduler having run.
	ListActive(ctx context.Context) ([]*BannerView, error)
	// ListAll reconciles too: the admin list shows the flags buyers would
	// see, not stale ones.
	ListAll(ctx context.Context) ([]*BannerView, error)
}

type BannerViewRepo interface {
	FindAll(ctx context.Context) ([]*BannerView, error)
	FindActive(ctx context.Context) ([]*BannerView, error)
}

type bannerQueriesImpl struct {
	repo  BannerViewRepo
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBannerQueries(repo BannerViewRepo, uow shared.UnitOfWork, clk clock.Clock) BannerQueries {
	return &bannerQueriesImpl{repo: repo, uow: uow, clock: clk}
}

func (q *bannerQueriesImpl) ListActive(ctx context.Context) ([]*BannerView, error) {
	if err := commands.ReconcileBanners(ctx, q.uow, q.clock.Now()); err != nil {
		return nil, err
	}
	return q.repo.FindActive(ctx)
}

func (q *bannerQueriesImpl) ListAll(ctx context.Context) ([]*BannerView, error) {
	if err := commands.ReconcileBanners(ctx, q.uow, q.clock.Now()); err != nil {
		return nil, err
	}
	return q.repo.FindAll(ctx)
}
