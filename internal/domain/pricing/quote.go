package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

const scale = 2

// Rates are read-only inputs owned by the tax/shipping provider.
type Rates struct {
	TaxRate     decimal.Decimal
	ShippingFee decimal.Decimal
}

type RatesProvider interface {
	Rates(ctx context.Context) (Rates, error)
}

type StaticRates struct {
	rates Rates
}

func NewStaticRates(taxRate, shippingFee decimal.Decimal) *StaticRates {
	return &StaticRates{rates: Rates{TaxRate: taxRate, ShippingFee: shippingFee}}
}

func (s *StaticRates) Rates(context.Context) (Rates, error) {
	return s.rates, nil
}

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Calculate prices the lines. Shipping is waived for an empty basket.
func Calculate(lines []Line, rates Rates) Quote {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(scale)

	tax := subtotal.Mul(rates.TaxRate).Round(scale)
	shipping := decimal.Zero
	if len(lines) > 0 {
		shipping = rates.ShippingFee.Round(scale)
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// MinorUnits converts a major-unit amount to the gateway's integer unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(scale).Round(0).IntPart()
}
