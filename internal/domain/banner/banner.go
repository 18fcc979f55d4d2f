package banner

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a scheduled storefront banner. Active is a materialized flag kept
// in step with the schedule window by Reconcile, so list queries can filter on
// it without recomputing the window.
type Banner struct {
	id        uuid.UUID
	title     string
	imageURL  string
	linkURL   string
	sortOrder int
	active    bool
	startAt   *time.Time
	endAt     *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewBanner(title, imageURL, linkURL string, sortOrder int, active bool, startAt, endAt *time.Time, now time.Time) *Banner {
	return &Banner{
		id:        uuid.New(),
		title:     title,
		imageURL:  imageURL,
		linkURL:   linkURL,
		sortOrder: sortOrder,
		active:    active,
		startAt:   startAt,
		endAt:     endAt,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBanner(
	id uuid.UUID,
	title, imageURL, linkURL string,
	sortOrder int,
	active bool,
	startAt, endAt *time.Time,
	createdAt, updatedAt time.Time,
) *Banner {
	return &Banner{
		id:        id,
		title:     title,
		imageURL:  imageURL,
		linkURL:   linkURL,
		sortOrder: sortOrder,
		active:    active,
		startAt:   startAt,
		endAt:     endAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Banner) ID() uuid.UUID        { return b.id }
func (b *Banner) Title() string        { return b.title }
func (b *Banner) ImageURL() string     { return b.imageURL }
func (b *Banner) LinkURL() string      { return b.linkURL }
func (b *Banner) SortOrder() int       { return b.sortOrder }
func (b *Banner) Active() bool         { return b.active }
func (b *Banner) StartAt() *time.Time  { return b.startAt }
func (b *Banner) EndAt() *time.Time    { return b.endAt }
func (b *Banner) CreatedAt() time.Time { return b.createdAt }
func (b *Banner) UpdatedAt() time.Time { return b.updatedAt }

func (b *Banner) SetActive(active bool, now time.Time) {
	b.active = active
	b.updatedAt = now
}

func (b *Banner) Update(title, imageURL, linkURL string, sortOrder int, active bool, startAt, endAt *time.Time, now time.Time) {
	b.title = title
	b.imageURL = imageURL
	b.linkURL = linkURL
	b.sortOrder = sortOrder
	b.active = active
	b.startAt = startAt
	b.endAt = endAt
	b.updatedAt = now
}

// shouldEnable reports whether a dormant banner's window has opened:
// startAt is set and has passed, and endAt (if set) has not.
func (b *Banner) shouldEnable(now time.Time) bool {
	if b.active || b.startAt == nil {
		return false
	}
	if b.startAt.After(now) {
		return false
	}
	return b.endAt == nil || !b.endAt.Before(now)
}

// shouldDisable reports whether an active banner's window has closed.
// A banner without endAt never auto-disables.
func (b *Banner) shouldDisable(now time.Time) bool {
	return b.active && b.endAt != nil && b.endAt.Before(now)
}

// Reconcile flips the active flag to match the schedule window and reports
// whether anything changed, so callers persist only real transitions.
func (b *Banner) Reconcile(now time.Time) bool {
	switch {
	case b.shouldEnable(now):
		b.active = true
		b.updatedAt = now
		return true
	case b.shouldDisable(now):
		b.active = false
		b.updatedAt = now
		return true
	default:
		return false
	}
}
