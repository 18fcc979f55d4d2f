package repository

import (
	"context"

	"organic-storefront/internal/domain/payment"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentMethodRepository struct{}

func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, tx db.DBTX, m *payment.Method) error {
	const query = `
		INSERT INTO payment_methods (id, name, account_name, number, qr_url, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		m.ID(), m.Name(), m.AccountName(), m.Number(), m.QRURL(), m.Active(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment method", err)
	}
	return nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment method", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment method not found", nil, infra.KindNotFound)
	}
	return nil
}
