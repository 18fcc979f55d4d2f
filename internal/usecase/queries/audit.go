package queries

import "context"

type AuditQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*AuditEntryView, error)
}

type AuditViewRepo interface {
	FindRecent(ctx context.Context, limit int32) ([]*AuditEntryView, error)
}

type auditQueriesImpl struct {
	repo AuditViewRepo
}

func NewAuditQueries(repo AuditViewRepo) AuditQueries {
	return &auditQueriesImpl{repo: repo}
}

func (q *auditQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*AuditEntryView, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return q.repo.FindRecent(ctx, int32(limit))
}
