package commands

import (
	"context"
	"encoding/json"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNegativeAvailable = errs.New("available stock cannot be negative")

type SaveLedgerEntry struct {
	ProductID  uuid.UUID
	Available  int
	PriceCents int64
}

type SaveLedgerRequest struct {
	Day     inventory.Day
	Entries []SaveLedgerEntry
}

type InventoryCommands interface {
	// SaveLedger replaces a day's stock plan. Sold counters are never
	// touched: an admin restock cannot erase the record of units already
	// reserved or paid for.
	SaveLedger(ctx context.Context, req SaveLedgerRequest, actor string) error
}

type inventoryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryUseCase(uow shared.UnitOfWork, clk clock.Clock) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow, clock: clk}
}

func (uc *inventoryUseCaseImpl) SaveLedger(ctx context.Context, req SaveLedgerRequest, actor string) error {
	for _, entry := range req.Entries {
		if entry.Available < 0 {
			return ErrNegativeAvailable
		}
		if _, err := inventory.NewEntry(entry.ProductID, entry.Available, entry.PriceCents); err != nil {
			return err
		}
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		keep := make([]uuid.UUID, 0, len(req.Entries))
		for _, entry := range req.Entries {
			if derr := tx.Inventory().UpsertEntry(ctx, tx.DB(), req.Day, entry.ProductID, entry.Available, entry.PriceCents); derr != nil {
				return derr
			}
			keep = append(keep, entry.ProductID)
		}
		if derr := tx.Inventory().DeleteEntriesExcept(ctx, tx.DB(), req.Day, keep); derr != nil {
			return derr
		}
		detail, _ := json.Marshal(map[string]int{"entries": len(req.Entries)})
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "inventory.save",
			EntityKind: "ledger",
			EntityID:   req.Day.String(),
			Detail:     detail,
			At:         now,
		})
	})
}
