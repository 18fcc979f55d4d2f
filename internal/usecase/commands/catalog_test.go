//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/infra/cache"
	"organic-storefront/internal/pkg/clock"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (commands.CatalogCommands, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	clk := clock.NewMockClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	// nil Redis client: cache is off and invalidation is a no-op
	uc := commands.NewCatalogUseCase(newFakeUoW(store), clk, cache.NewCatalogCache(nil, time.Minute))
	return uc, store
}

func TestCreateProduct(t *testing.T) {
	t.Run("creates a visible product and audits it", func(t *testing.T) {
		uc, store := newCatalogFixture(t)

		id, err := uc.CreateProduct(context.Background(), commands.ProductRequest{
			Name:       "sourdough loaf",
			PriceCents: 750,
			Unit:       "loaf",
			Visible:    true,
		}, "ops@example.com")
		require.NoError(t, err)

		snap, ok := store.products[id]
		require.True(t, ok)
		assert.Equal(t, "sourdough loaf", snap.Name)
		assert.True(t, snap.Visible)

		require.Len(t, store.audit, 1)
		assert.Equal(t, "product.create", store.audit[0].Action)
		assert.Equal(t, "ops@example.com", store.audit[0].Actor)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc, store := newCatalogFixture(t)

		_, err := uc.CreateProduct(context.Background(), commands.ProductRequest{
			Name:       "",
			PriceCents: 750,
		}, "ops@example.com")

		assert.ErrorIs(t, err, catalog.ErrEmptyName)
		assert.Empty(t, store.products)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		uc, _ := newCatalogFixture(t)

		_, err := uc.CreateProduct(context.Background(), commands.ProductRequest{
			Name:       "sourdough loaf",
			PriceCents: 0,
		}, "ops@example.com")

		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("updates price and visibility", func(t *testing.T) {
		uc, store := newCatalogFixture(t)
		id := store.addProduct(true)

		err := uc.UpdateProduct(context.Background(), id, commands.ProductRequest{
			Name:       "heirloom tomatoes",
			PriceCents: 5200,
			Visible:    false,
		}, "ops@example.com")
		require.NoError(t, err)

		snap := store.products[id]
		assert.Equal(t, int64(5200), snap.PriceCents)
		assert.False(t, snap.Visible)
	})

	t.Run("unknown product is reported as not found", func(t *testing.T) {
		uc, _ := newCatalogFixture(t)

		err := uc.UpdateProduct(context.Background(), uuid.New(), commands.ProductRequest{
			Name:       "anything",
			PriceCents: 100,
		}, "ops@example.com")

		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}
