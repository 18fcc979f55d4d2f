//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanupThreshold = 15 * time.Minute

func TestReleaseExpired(t *testing.T) {
	t.Run("releases stale reservations with expired_cleanup", func(t *testing.T) {
		f := newOrderFixture(t, 3)
		sweeper := commands.NewSweeperUseCase(newFakeUoW(f.store), f.clock, f.publisher, cleanupThreshold)

		stale := f.reserve(t)
		f.clock.Add(16 * time.Minute)
		fresh := f.reserve(t)

		result, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)

		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 1, result.Released)
		assert.Equal(t, 0, result.Failed)

		staleSnap := f.store.orders[stale]
		assert.Equal(t, order.StatusCancelled, staleSnap.Status)
		assert.Equal(t, order.CancelReasonExpiredCleanup, *staleSnap.CancelReason)

		freshSnap := f.store.orders[fresh]
		assert.Equal(t, order.StatusReserved, freshSnap.Status)

		// One of the two reserved units came back.
		entry, _ := f.store.entry(f.day, f.productID)
		assert.Equal(t, 2, entry.Available)
		assert.Equal(t, 1, entry.Sold)
	})

	t.Run("stale pending_verification orders are swept too", func(t *testing.T) {
		f := newOrderFixture(t, 1)
		sweeper := commands.NewSweeperUseCase(newFakeUoW(f.store), f.clock, f.publisher, cleanupThreshold)

		orderID := f.reserve(t)
		require.NoError(t, f.uc.SubmitReceipt(context.Background(), orderID, "https://cdn.example/receipt.jpg"))
		f.clock.Add(20 * time.Minute)

		result, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Released)

		entry, _ := f.store.entry(f.day, f.productID)
		assert.Equal(t, 1, entry.Available)
		assert.Equal(t, 0, entry.Sold)
	})

	t.Run("paid orders are never swept", func(t *testing.T) {
		f := newOrderFixture(t, 1)
		sweeper := commands.NewSweeperUseCase(newFakeUoW(f.store), f.clock, f.publisher, cleanupThreshold)

		orderID := f.reserve(t)
		require.NoError(t, f.uc.SubmitReceipt(context.Background(), orderID, "https://cdn.example/receipt.jpg"))
		require.NoError(t, f.uc.Verify(context.Background(), orderID, "admin@example.com"))
		f.clock.Add(time.Hour)

		result, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)
		assert.Equal(t, 0, result.Scanned)

		snap := f.store.orders[orderID]
		assert.Equal(t, order.StatusPaid, snap.Status)
	})

	t.Run("sweep is re-entrant", func(t *testing.T) {
		f := newOrderFixture(t, 2)
		sweeper := commands.NewSweeperUseCase(newFakeUoW(f.store), f.clock, f.publisher, cleanupThreshold)

		f.reserve(t)
		f.reserve(t)
		f.clock.Add(16 * time.Minute)

		first, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)
		assert.Equal(t, 2, first.Released)

		second, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)
		assert.Equal(t, 0, second.Scanned)

		entry, _ := f.store.entry(f.day, f.productID)
		assert.Equal(t, 2, entry.Available)
		assert.Equal(t, 0, entry.Sold)

		require.Len(t, f.publisher.byType(events.TypeOrderCancelled), 2)
	})

	t.Run("empty sweep on an empty window", func(t *testing.T) {
		store := newFakeStore()
		mockClock := clock.NewMockClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
		sweeper := commands.NewSweeperUseCase(newFakeUoW(store), mockClock, &recordingPublisher{}, cleanupThreshold)

		result, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
		require.NoError(t, err)
		assert.Equal(t, &commands.SweepResult{}, result)
	})
}

// Scenario from the admin bulk sweep: reserved at T, swept at T+16m with a
// 15 minute threshold.
func TestReleaseExpiredBoundary(t *testing.T) {
	f := newOrderFixture(t, 1)
	sweeper := commands.NewSweeperUseCase(newFakeUoW(f.store), f.clock, f.publisher, cleanupThreshold)

	orderID := f.reserve(t)

	// At exactly T+15m the order is not yet past the threshold.
	f.clock.Add(cleanupThreshold)
	result, err := sweeper.ReleaseExpired(context.Background(), "scheduler")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)

	f.clock.Add(time.Minute)
	result, err = sweeper.ReleaseExpired(context.Background(), "scheduler")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Released)

	snap := f.store.orders[orderID]
	require.NotNil(t, snap.CancelReason)
	assert.Equal(t, order.CancelReasonExpiredCleanup, *snap.CancelReason)
}
