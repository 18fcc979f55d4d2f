package commands

import (
	"context"
	"time"

	"organic-storefront/internal/domain/banner"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBannerWindowInverted = errs.New("banner end precedes its start")

type BannerRequest struct {
	Title     string
	ImageURL  string
	LinkURL   string
	SortOrder int
	Active    bool
	StartAt   *time.Time
	EndAt     *time.Time
}

type BannerCommands interface {
	Create(ctx context.Context, req BannerRequest, actor string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req BannerRequest, actor string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, actor string) error
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

type bannerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBannerUseCase(uow shared.UnitOfWork, clk clock.Clock) BannerCommands {
	return &bannerUseCaseImpl{uow: uow, clock: clk}
}

func validateWindow(req BannerRequest) error {
	if req.StartAt != nil && req.EndAt != nil && req.EndAt.Before(*req.StartAt) {
		return ErrBannerWindowInverted
	}
	return nil
}

func (uc *bannerUseCaseImpl) Create(ctx context.Context, req BannerRequest, actor string) (uuid.UUID, error) {
	if err := validateWindow(req); err != nil {
		return uuid.Nil, err
	}

	now := uc.clock.Now()
	b := banner.NewBanner(req.Title, req.ImageURL, req.LinkURL, req.SortOrder, req.Active, req.StartAt, req.EndAt, now)
	b.Reconcile(now)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Banners().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "banner.create",
			EntityKind: "banner",
			EntityID:   b.ID().String(),
			At:         now,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (uc *bannerUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req BannerRequest, actor string) error {
	if err := validateWindow(req); err != nil {
		return err
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BannerByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBannerNotFound
			}
			return derr
		}

		b := snap.ToDomain()
		b.Update(req.Title, req.ImageURL, req.LinkURL, req.SortOrder, req.Active, req.StartAt, req.EndAt, now)
		b.Reconcile(now)

		if derr := tx.Banners().Update(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "banner.update",
			EntityKind: "banner",
			EntityID:   id.String(),
			At:         now,
		})
	})
}

func (uc *bannerUseCaseImpl) SetActive(ctx context.Context, id uuid.UUID, active bool, actor string) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Banners().SetActive(ctx, tx.DB(), id, active, now); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBannerNotFound
			}
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "banner.set_active",
			EntityKind: "banner",
			EntityID:   id.String(),
			At:         now,
		})
	})
}

func (uc *bannerUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Banners().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBannerNotFound
			}
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "banner.delete",
			EntityKind: "banner",
			EntityID:   id.String(),
			At:         now,
		})
	})
}

// ReconcileBanners is the active-flag maintenance pass run before banner
// list reads, public and admin alike. Only banners whose window state
// actually changed are written back.
func ReconcileBanners(ctx context.Context, uow shared.UnitOfWork, now time.Time) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snaps, derr := tx.Reads().AllBanners(ctx)
		if derr != nil {
			return derr
		}
		for _, snap := range snaps {
			b := snap.ToDomain()
			if !b.Reconcile(now) {
				continue
			}
			if derr := tx.Banners().SetActive(ctx, tx.DB(), b.ID(), b.Active(), now); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					// Deleted between read and write, nothing to flip.
					continue
				}
				return derr
			}
		}
		return nil
	})
}
