package commands

import (
	"context"

	"organic-storefront/internal/domain/payment"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentMethodRequest struct {
	Name        string
	AccountName string
	Number      string
	QRURL       string
	Active      bool
}

type SettingsCommands interface {
	AddPaymentMethod(ctx context.Context, req PaymentMethodRequest, actor string) (uuid.UUID, error)
	RemovePaymentMethod(ctx context.Context, id uuid.UUID, actor string) error
}

type settingsUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingsUseCase(uow shared.UnitOfWork, clk clock.Clock) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, clock: clk}
}

func (uc *settingsUseCaseImpl) AddPaymentMethod(ctx context.Context, req PaymentMethodRequest, actor string) (uuid.UUID, error) {
	now := uc.clock.Now()
	method, err := payment.NewMethod(req.Name, req.AccountName, req.Number, req.QRURL, req.Active, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.PaymentMethods().Create(ctx, tx.DB(), method); derr != nil {
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "payment_method.add",
			EntityKind: "payment_method",
			EntityID:   method.ID().String(),
			At:         now,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return method.ID(), nil
}

func (uc *settingsUseCaseImpl) RemovePaymentMethod(ctx context.Context, id uuid.UUID, actor string) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.PaymentMethods().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrPaymentMethodNotFound
			}
			return derr
		}
		return tx.Audit().Append(ctx, tx.DB(), shared.AuditEntry{
			Actor:      actor,
			Action:     "payment_method.remove",
			EntityKind: "payment_method",
			EntityID:   id.String(),
			At:         now,
		})
	})
}
