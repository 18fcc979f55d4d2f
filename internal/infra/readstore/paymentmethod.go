package readstore

import (
	"context"

	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/usecase/queries"
)

type PaymentMethodReadStore struct {
	db db.DBTX
}

func NewPaymentMethodReadStore(dbtx db.DBTX) *PaymentMethodReadStore {
	return &PaymentMethodReadStore{db: dbtx}
}

func (r *PaymentMethodReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.PaymentMethodView, error) {
	const query = `
		SELECT id, name, account_name, number, qr_url, active, created_at
		FROM payment_methods
		WHERE NOT $1 OR active
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}
	defer rows.Close()

	var views []*queries.PaymentMethodView
	for rows.Next() {
		var view queries.PaymentMethodView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.AccountName, &view.Number,
			&view.QRURL, &view.Active, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment method row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment method rows", err)
	}
	return views, nil
}
