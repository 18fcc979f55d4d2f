//go:build unit

package banner_test

import (
	"testing"
	"time"

	"organic-storefront/internal/domain/banner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t time.Time) *time.Time { return &t }

func TestReconcile(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		active     bool
		startAt    *time.Time
		endAt      *time.Time
		changed    bool
		wantActive bool
	}{
		{
			name:       "dormant banner activates once window opens",
			active:     false,
			startAt:    ptr(now.Add(-time.Hour)),
			changed:    true,
			wantActive: true,
		},
		{
			name:       "dormant banner waits for future start",
			active:     false,
			startAt:    ptr(now.Add(time.Hour)),
			changed:    false,
			wantActive: false,
		},
		{
			name:       "dormant banner with elapsed window stays off",
			active:     false,
			startAt:    ptr(now.Add(-2 * time.Hour)),
			endAt:      ptr(now.Add(-time.Hour)),
			changed:    false,
			wantActive: false,
		},
		{
			name:       "active banner deactivates after end",
			active:     true,
			startAt:    ptr(now.Add(-2 * time.Hour)),
			endAt:      ptr(now.Add(-time.Minute)),
			changed:    true,
			wantActive: false,
		},
		{
			name:       "active banner without end never expires",
			active:     true,
			startAt:    ptr(now.Add(-time.Hour)),
			changed:    false,
			wantActive: true,
		},
		{
			name:       "unscheduled dormant banner stays manual",
			active:     false,
			changed:    false,
			wantActive: false,
		},
		{
			name:       "window boundary is inclusive",
			active:     false,
			startAt:    ptr(now),
			endAt:      ptr(now),
			changed:    true,
			wantActive: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := banner.NewBanner("Harvest week", "https://cdn.example/b.jpg", "/catalog", 1, c.active, c.startAt, c.endAt, now.Add(-24*time.Hour))

			changed := b.Reconcile(now)

			assert.Equal(t, c.changed, changed)
			assert.Equal(t, c.wantActive, b.Active())
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	b := banner.NewBanner("Harvest week", "https://cdn.example/b.jpg", "", 1, false, ptr(now.Add(-time.Hour)), nil, now.Add(-24*time.Hour))

	require.True(t, b.Reconcile(now))
	require.False(t, b.Reconcile(now))
	assert.True(t, b.Active())
}
