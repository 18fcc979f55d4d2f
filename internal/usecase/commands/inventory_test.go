//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLedger(t *testing.T) {
	day, err := inventory.ParseDay("2026-08-29")
	require.NoError(t, err)

	newFixture := func() (*fakeStore, commands.InventoryCommands) {
		store := newFakeStore()
		mockClock := clock.NewMockClock(time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC))
		return store, commands.NewInventoryUseCase(newFakeUoW(store), mockClock)
	}

	t.Run("writes the day's plan", func(t *testing.T) {
		store, uc := newFixture()
		productA, productB := uuid.New(), uuid.New()

		err := uc.SaveLedger(context.Background(), commands.SaveLedgerRequest{
			Day: day,
			Entries: []commands.SaveLedgerEntry{
				{ProductID: productA, Available: 10, PriceCents: 4500},
				{ProductID: productB, Available: 4, PriceCents: 2500},
			},
		}, "admin@example.com")
		require.NoError(t, err)

		entryA, ok := store.entry(day, productA)
		require.True(t, ok)
		assert.Equal(t, 10, entryA.Available)
		assert.Equal(t, int64(4500), entryA.PriceCents)

		require.Len(t, store.audit, 1)
		assert.Equal(t, "inventory.save", store.audit[0].Action)
		assert.Equal(t, day.String(), store.audit[0].EntityID)
	})

	t.Run("restock preserves sold counters", func(t *testing.T) {
		store, uc := newFixture()
		productID := uuid.New()
		store.entries[entryKey{day.String(), productID}] = inventory.Entry{ProductID: productID, Available: 1, Sold: 3, PriceCents: 4500}

		err := uc.SaveLedger(context.Background(), commands.SaveLedgerRequest{
			Day:     day,
			Entries: []commands.SaveLedgerEntry{{ProductID: productID, Available: 8, PriceCents: 5000}},
		}, "admin@example.com")
		require.NoError(t, err)

		entry, _ := store.entry(day, productID)
		assert.Equal(t, 8, entry.Available)
		assert.Equal(t, 3, entry.Sold)
		assert.Equal(t, int64(5000), entry.PriceCents)
	})

	t.Run("products dropped from the plan are removed", func(t *testing.T) {
		store, uc := newFixture()
		kept, dropped := uuid.New(), uuid.New()
		store.stock(day, kept, 2, 4500)
		store.stock(day, dropped, 2, 2000)

		err := uc.SaveLedger(context.Background(), commands.SaveLedgerRequest{
			Day:     day,
			Entries: []commands.SaveLedgerEntry{{ProductID: kept, Available: 2, PriceCents: 4500}},
		}, "admin@example.com")
		require.NoError(t, err)

		_, ok := store.entry(day, dropped)
		assert.False(t, ok)
	})

	t.Run("other days are untouched", func(t *testing.T) {
		store, uc := newFixture()
		otherDay, err := inventory.ParseDay("2026-08-30")
		require.NoError(t, err)
		productID := uuid.New()
		store.stock(otherDay, productID, 7, 4500)

		err = uc.SaveLedger(context.Background(), commands.SaveLedgerRequest{
			Day:     day,
			Entries: []commands.SaveLedgerEntry{{ProductID: uuid.New(), Available: 1, PriceCents: 100}},
		}, "admin@example.com")
		require.NoError(t, err)

		entry, ok := store.entry(otherDay, productID)
		require.True(t, ok)
		assert.Equal(t, 7, entry.Available)
	})

	t.Run("negative stock rejected before any write", func(t *testing.T) {
		store, uc := newFixture()

		err := uc.SaveLedger(context.Background(), commands.SaveLedgerRequest{
			Day: day,
			Entries: []commands.SaveLedgerEntry{
				{ProductID: uuid.New(), Available: 5, PriceCents: 100},
				{ProductID: uuid.New(), Available: -1, PriceCents: 100},
			},
		}, "admin@example.com")

		require.ErrorIs(t, err, commands.ErrNegativeAvailable)
		assert.Empty(t, store.entries)
	})
}
