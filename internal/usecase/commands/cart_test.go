//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartCommands(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(now)
	uc := commands.NewCartUseCase(store, clk, 24*time.Hour)

	sku := store.AddSKU("SKU-X", decimal.RequireFromString("10"), 3)

	session, err := uc.StartSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, now.Add(24*time.Hour), session.ExpiresAt)

	t.Run("set and remove an item", func(t *testing.T) {
		require.NoError(t, uc.SetItem(ctx, session.Token, sku, 5))
		require.NoError(t, uc.SetItem(ctx, session.Token, sku, 2))
		require.NoError(t, uc.RemoveItem(ctx, session.Token, sku))

		err := uc.RemoveItem(ctx, session.Token, sku)
		assert.True(t, errs.Is(err, commands.ErrCartItemNotFound))
	})

	t.Run("cart writes never touch stock", func(t *testing.T) {
		require.NoError(t, uc.SetItem(ctx, session.Token, sku, 99))
		assert.Equal(t, 3, store.Available(sku))
		assert.Empty(t, store.Reservations())
	})

	testCases := []struct {
		name     string
		token    string
		skuID    uuid.UUID
		quantity int
		wantErr  error
	}{
		{"zero quantity", session.Token, sku, 0, commands.ErrInvalidQuantity},
		{"unknown sku", session.Token, uuid.New(), 1, commands.ErrSKUNotFound},
		{"unknown session", "missing", sku, 1, commands.ErrSessionNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.SetItem(ctx, tc.token, tc.skuID, tc.quantity)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
		})
	}

	t.Run("expired session", func(t *testing.T) {
		clk.Add(25 * time.Hour)
		defer clk.Set(now)

		err := uc.SetItem(ctx, session.Token, sku, 1)
		assert.True(t, errs.Is(err, commands.ErrSessionNotFound))
	})
}
