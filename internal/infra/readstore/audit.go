package readstore

import (
	"context"

	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/usecase/queries"
)

type AuditReadStore struct {
	db db.DBTX
}

func NewAuditReadStore(dbtx db.DBTX) *AuditReadStore {
	return &AuditReadStore{db: dbtx}
}

func (r *AuditReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.AuditEntryView, error) {
	const query = `
		SELECT id, actor, action, entity_kind, entity_id, detail, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	defer rows.Close()

	var views []*queries.AuditEntryView
	for rows.Next() {
		var view queries.AuditEntryView
		if err := rows.Scan(
			&view.ID, &view.Actor, &view.Action, &view.EntityKind,
			&view.EntityID, &view.Detail, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit rows", err)
	}
	return views, nil
}
