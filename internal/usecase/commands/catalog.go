package commands

import (
	"context"

	domcatalog "organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/cache"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductRequest struct {
	CategoryID  *uuid.UUID
	Name        string
	Description string
	ImageURL    string
	PriceCents  int64
	Unit        string
	Visible     bool
}

type CatalogCommands interface {
	CreateProduct(ctx context.Context, req ProductRequest, actor string) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest, actor string) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache *cache.CatalogCache
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock, catalogCache *cache.CatalogCache) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk, cache: catalogCache}
}

func (uc *catalogUseCaseImpl) CreateProduct(ctx context.Context, req ProductRequest, actor string) (uuid.UUID, error) {
	now := uc.clock.Now()
	product, err := domcatalog.NewProduct(req.CategoryID, req.Name, req.Description, req.ImageURL, req.PriceCents, req.Unit, req.Visible, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Products().Create(ctx, tx.DB(), product); derr != nil {
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "product.create",
			EntityKind: "product",
			EntityID:   product.ID().String(),
			At:         now,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.cache.Invalidate(ctx)
	return product.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest, actor string) error {
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProductByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return derr
		}

		// Description, image and unit are not part of the snapshot the write
		// side keeps; the update overwrites every column anyway.
		product := domcatalog.ReconstructProduct(
			snap.ID, snap.CategoryID, snap.Name, "", "", snap.PriceCents, "", snap.Visible, now, now,
		)
		if derr := product.Update(req.CategoryID, req.Name, req.Description, req.ImageURL, req.PriceCents, req.Unit, req.Visible, now); derr != nil {
			return derr
		}
		if derr := tx.Products().Update(ctx, tx.DB(), product); derr != nil {
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "product.update",
			EntityKind: "product",
			EntityID:   id.String(),
			At:         now,
		})
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	return nil
}
