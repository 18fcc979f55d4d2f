package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/usecase/shared"
)

type SweepResult struct {
	Scanned  int
	Released int
	Failed   int
}

type SweeperCommands interface {
	// ReleaseExpired cancels every stock-holding order older than the
	// cleanup threshold with reason expired_cleanup.
	ReleaseExpired(ctx context.Context, actor string) (*SweepResult, error)
}

type sweeperUseCaseImpl struct {
	uow              shared.UnitOfWork
	clock            clock.Clock
	publisher        events.Publisher
	cleanupThreshold time.Duration
}

func NewSweeperUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher events.Publisher, cleanupThreshold time.Duration) SweeperCommands {
	return &sweeperUseCaseImpl{
		uow:              uow,
		clock:            clk,
		publisher:        publisher,
		cleanupThreshold: cleanupThreshold,
	}
}

// Each order is released in its own transaction: one poisoned record must not
// stop the rest of the sweep, and the sweep stays re-entrant because a
// concurrently finalized order is simply skipped.
func (uc *sweeperUseCaseImpl) ReleaseExpired(ctx context.Context, actor string) (*SweepResult, error) {
	now := uc.clock.Now()
	cutoff := now.Add(-uc.cleanupThreshold)

	stale, err := uc.uow.CommandReads().HeldOrdersCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Scanned: len(stale)}
	for _, snap := range stale {
		if err := uc.releaseOne(ctx, snap, now, actor); err != nil {
			if errors.Is(err, order.ErrAlreadyFinalized) || infra.IsKind(err, infra.KindConflict) {
				// Lost the race to the buyer or an admin, nothing to release.
				continue
			}
			result.Failed++
			slog.Error("failed to release expired order",
				"order_id", snap.ID.String(),
				"error", err.Error())
			continue
		}
		result.Released++
	}

	slog.Info("expiry sweep finished",
		"scanned", result.Scanned,
		"released", result.Released,
		"failed", result.Failed)
	return result, nil
}

func (uc *sweeperUseCaseImpl) releaseOne(ctx context.Context, snap shared.OrderSnapshot, now time.Time, actor string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, loaded, derr := loadOrder(ctx, tx, snap.ID)
		if derr != nil {
			return derr
		}
		holdsStock := loaded.HoldsStock()
		if derr := o.Cancel(order.CancelReasonExpiredCleanup, now); derr != nil {
			return derr
		}
		if derr := tx.Orders().UpdateState(ctx, tx.DB(), o, loaded); derr != nil {
			return derr
		}
		if holdsStock {
			if derr := tx.Inventory().ReleaseEntry(ctx, tx.DB(), o.Day(), o.ProductID(), o.PriceCents()); derr != nil {
				return derr
			}
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "order.cancel.expired_cleanup",
			EntityKind: "order",
			EntityID:   snap.ID.String(),
			At:         now,
		})
	})
	if err != nil {
		return err
	}

	reason := order.CancelReasonExpiredCleanup.String()
	uc.publisher.Publish(ctx, events.NewOrderEvent(
		events.TypeOrderCancelled, snap.ID, snap.ProductID,
		snap.Day.String(), order.StatusCancelled.String(), &reason, now,
	))
	return nil
}
