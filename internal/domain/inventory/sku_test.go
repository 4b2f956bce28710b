//go:build unit

package inventory_test

import (
	"testing"

	"storefront/internal/domain/inventory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSKU(t *testing.T) {
	testCases := []struct {
		name      string
		code      string
		price     string
		available int
		wantErr   error
	}{
		{name: "valid", code: "TEE-BLK-M", price: "4500", available: 10},
		{name: "blank code", code: "  ", price: "1", available: 1, wantErr: inventory.ErrInvalidSKUCode},
		{name: "negative stock", code: "A", price: "1", available: -1, wantErr: inventory.ErrNegativeStock},
		{name: "negative price", code: "A", price: "-0.01", available: 0, wantErr: inventory.ErrNegativeUnitPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sku, err := inventory.NewSKU(tc.code, "Tee", decimal.RequireFromString(tc.price), tc.available)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.available, sku.Available())
		})
	}
}

func TestSKU_CanFulfil(t *testing.T) {
	sku, err := inventory.NewSKU("A", "A", decimal.Zero, 4)
	require.NoError(t, err)

	assert.True(t, sku.CanFulfil(4))
	assert.False(t, sku.CanFulfil(5))
	assert.ErrorIs(t, inventory.ValidateQuantity(0), inventory.ErrInvalidQuantity)
	assert.NoError(t, inventory.ValidateQuantity(1))
}
