package queries

import (
	"context"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/pkg/errs"
)

type InventoryQueries interface {
	GetByDay(ctx context.Context, day inventory.Day) ([]*InventoryEntryView, error)
}

type InventoryViewRepo interface {
	FindByDay(ctx context.Context, day inventory.Day) ([]*InventoryEntryView, error)
}

type inventoryQueriesImpl struct {
	repo InventoryViewRepo
}

func NewInventoryQueries(repo InventoryViewRepo) InventoryQueries {
	return &inventoryQueriesImpl{repo: repo}
}

func (q *inventoryQueriesImpl) GetByDay(ctx context.Context, day inventory.Day) ([]*InventoryEntryView, error) {
	entries, err := q.repo.FindByDay(ctx, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLedgerNotFound
		}
		return nil, err
	}
	return entries, nil
}
