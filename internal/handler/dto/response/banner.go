package response

import (
	"time"

	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BannerResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   string     `json:"linkUrl"`
	SortOrder int        `json:"sortOrder"`
	Active    bool       `json:"active"`
	StartAt   *time.Time `json:"startAt,omitempty"`
	EndAt     *time.Time `json:"endAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type AuditEntryResponse struct {
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityKind string    `json:"entityKind"`
	EntityID   string    `json:"entityId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBannerViews(views []*queries.BannerView) []*BannerResponse {
	out := make([]*BannerResponse, len(views))
	for i, view := range views {
		var resp BannerResponse
		_ = copier.Copy(&resp, view)
		out[i] = &resp
	}
	return out
}

func FromAuditViews(views []*queries.AuditEntryView) []*AuditEntryResponse {
	out := make([]*AuditEntryResponse, len(views))
	for i, view := range views {
		var resp AuditEntryResponse
		_ = copier.Copy(&resp, view)
		out[i] = &resp
	}
	return out
}
