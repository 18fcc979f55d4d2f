package queries

import "context"

type PaymentMethodQueries interface {
	ListActive(ctx context.Context) ([]*PaymentMethodView, error)
	ListAll(ctx context.Context) ([]*PaymentMethodView, error)
}

type PaymentMethodViewRepo interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*PaymentMethodView, error)
}

type paymentMethodQueriesImpl struct {
	repo PaymentMethodViewRepo
}

func NewPaymentMethodQueries(repo PaymentMethodViewRepo) PaymentMethodQueries {
	return &paymentMethodQueriesImpl{repo: repo}
}

func (q *paymentMethodQueriesImpl) ListActive(ctx context.Context) ([]*PaymentMethodView, error) {
	return q.repo.FindAll(ctx, true)
}

func (q *paymentMethodQueriesImpl) ListAll(ctx context.Context) ([]*PaymentMethodView, error) {
	return q.repo.FindAll(ctx, false)
}
