package commands

import (
	"context"
	"time"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProductNotPurchasable = errs.New("product is not purchasable")

type ReserveOrderRequest struct {
	ProductID     uuid.UUID
	Day           inventory.Day
	CustomerName  string
	CustomerPhone string
	Note          string
}

type ReserveOrderResult struct {
	OrderID    uuid.UUID
	PriceCents int64
	ExpiresAt  time.Time
}

type OrderCommands interface {
	Reserve(ctx context.Context, req ReserveOrderRequest) (*ReserveOrderResult, error)
	SubmitReceipt(ctx context.Context, orderID uuid.UUID, receiptURL string) error
	Cancel(ctx context.Context, orderID uuid.UUID, reason order.CancelReason) error
	Verify(ctx context.Context, orderID uuid.UUID, actor string) error
	Reject(ctx context.Context, orderID uuid.UUID, actor string) error
}

type orderUseCaseImpl struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	publisher     events.Publisher
	paymentWindow time.Duration
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher events.Publisher, paymentWindow time.Duration) OrderCommands {
	return &orderUseCaseImpl{
		uow:           uow,
		clock:         clk,
		publisher:     publisher,
		paymentWindow: paymentWindow,
	}
}

// Reserve creates an order and claims its stock unit in one transaction. The
// ledger decrement carries the oversell guard, so no lock is taken on the
// product row and concurrent buyers simply race the conditional update.
func (uc *orderUseCaseImpl) Reserve(ctx context.Context, req ReserveOrderRequest) (*ReserveOrderResult, error) {
	now := uc.clock.Now()

	var created *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, derr := tx.Reads().ProductByID(ctx, req.ProductID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return derr
		}
		if !product.Visible {
			return ErrProductNotPurchasable
		}

		priceCents, derr := tx.Inventory().ReserveEntry(ctx, tx.DB(), req.Day, req.ProductID)
		if derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return errs.ErrLedgerNotFound
			case infra.IsKind(derr, infra.KindConflict):
				return errs.ErrOutOfStock
			}
			return derr
		}

		created = order.NewOrder(req.ProductID, req.Day, priceCents, req.CustomerName, req.CustomerPhone, req.Note, now)
		return tx.Orders().Create(ctx, tx.DB(), created)
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events.NewOrderEvent(
		events.TypeOrderReserved, created.ID(), created.ProductID(),
		created.Day().String(), created.Status().String(), nil, now,
	))

	return &ReserveOrderResult{
		OrderID:    created.ID(),
		PriceCents: created.PriceCents(),
		ExpiresAt:  now.Add(uc.paymentWindow),
	}, nil
}

func (uc *orderUseCaseImpl) SubmitReceipt(ctx context.Context, orderID uuid.UUID, receiptURL string) error {
	now := uc.clock.Now()

	var submitted *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, loaded, derr := loadOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if derr := o.SubmitReceipt(receiptURL, now); derr != nil {
			return derr
		}
		if derr := tx.Orders().UpdateState(ctx, tx.DB(), o, loaded); derr != nil {
			return derr
		}
		submitted = o
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, events.NewOrderEvent(
		events.TypeOrderPending, submitted.ID(), submitted.ProductID(),
		submitted.Day().String(), submitted.Status().String(), nil, now,
	))
	return nil
}

func (uc *orderUseCaseImpl) Cancel(ctx context.Context, orderID uuid.UUID, reason order.CancelReason) error {
	return uc.cancelAndRelease(ctx, orderID, reason, "")
}

func (uc *orderUseCaseImpl) Verify(ctx context.Context, orderID uuid.UUID, actor string) error {
	now := uc.clock.Now()

	var verified *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, loaded, derr := loadOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}
		if derr := o.Verify(now); derr != nil {
			return derr
		}
		if derr := tx.Orders().UpdateState(ctx, tx.DB(), o, loaded); derr != nil {
			return derr
		}
		verified = o
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "order.verify",
			EntityKind: "order",
			EntityID:   orderID.String(),
			At:         now,
		})
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, events.NewOrderEvent(
		events.TypeOrderPaid, verified.ID(), verified.ProductID(),
		verified.Day().String(), verified.Status().String(), nil, now,
	))
	return nil
}

func (uc *orderUseCaseImpl) Reject(ctx context.Context, orderID uuid.UUID, actor string) error {
	return uc.cancelAndRelease(ctx, orderID, order.CancelReasonRejectedPayment, actor)
}

// cancelAndRelease is the single cancellation path. Releasing the held unit
// happens inside the same transaction as the status flip, so a decrement can
// never be stranded by a crash between the two writes.
func (uc *orderUseCaseImpl) cancelAndRelease(ctx context.Context, orderID uuid.UUID, reason order.CancelReason, actor string) error {
	now := uc.clock.Now()

	var cancelled *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, loaded, derr := loadOrder(ctx, tx, orderID)
		if derr != nil {
			return derr
		}

		holdsStock := loaded.HoldsStock()
		if derr := o.Cancel(reason, now); derr != nil {
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

		cancelled = o
		if actor == "" {
			return nil
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "order.cancel." + reason.String(),
			EntityKind: "order",
			EntityID:   orderID.String(),
			At:         now,
		})
	})
	if err != nil {
		return err
	}

	reasonStr := reason.String()
	uc.publisher.Publish(ctx, events.NewOrderEvent(
		events.TypeOrderCancelled, cancelled.ID(), cancelled.ProductID(),
		cancelled.Day().String(), cancelled.Status().String(), &reasonStr, now,
	))
	return nil
}

func loadOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, order.Status, error) {
	snap, err := tx.Reads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", errs.ErrOrderNotFound
		}
		return nil, "", err
	}
	return snap.ToDomain(), snap.Status, nil
}
