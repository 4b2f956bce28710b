//go:build unit

package pricing_test

import (
	"context"
	"testing"

	"storefront/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name  string
		lines []pricing.Line
		rates pricing.Rates
		want  pricing.Quote
	}{
		{
			name:  "tax and shipping",
			lines: []pricing.Line{{UnitPrice: d("1000"), Quantity: 2}, {UnitPrice: d("49.99"), Quantity: 1}},
			rates: pricing.Rates{TaxRate: d("0.075"), ShippingFee: d("1500")},
			want:  pricing.Quote{Subtotal: d("2049.99"), Tax: d("153.75"), Shipping: d("1500"), Total: d("3703.74")},
		},
		{
			name:  "no tax",
			lines: []pricing.Line{{UnitPrice: d("10.005"), Quantity: 1}},
			rates: pricing.Rates{TaxRate: decimal.Zero, ShippingFee: decimal.Zero},
			want:  pricing.Quote{Subtotal: d("10.01"), Tax: d("0"), Shipping: d("0"), Total: d("10.01")},
		},
		{
			name:  "empty basket ships free",
			rates: pricing.Rates{TaxRate: d("0.075"), ShippingFee: d("1500")},
			want:  pricing.Quote{Subtotal: d("0"), Tax: d("0"), Shipping: d("0"), Total: d("0")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.Calculate(tc.lines, tc.rates)
			assert.True(t, tc.want.Subtotal.Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, tc.want.Tax.Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, tc.want.Shipping.Equal(got.Shipping), "shipping %s", got.Shipping)
			assert.True(t, tc.want.Total.Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestStaticRates(t *testing.T) {
	p := pricing.NewStaticRates(d("0.1"), d("5"))
	rates, err := p.Rates(context.Background())
	require.NoError(t, err)
	assert.True(t, rates.TaxRate.Equal(d("0.1")))
	assert.True(t, rates.ShippingFee.Equal(d("5")))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(370374), pricing.MinorUnits(d("3703.74")))
	assert.Equal(t, int64(1000), pricing.MinorUnits(d("10")))
}
