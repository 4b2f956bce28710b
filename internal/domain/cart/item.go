package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidItemQuantity = errors.New("cart: item quantity must be greater than zero")

// Item is the shopper's desired quantity of one SKU, joined with the SKU
// fields the checkout needs for pricing.
type Item struct {
	SKUID     uuid.UUID
	SKUCode   string
	SKUName   string
	UnitPrice decimal.Decimal
	Quantity  int
}

func NewItem(skuID uuid.UUID, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidItemQuantity
	}
	return Item{SKUID: skuID, Quantity: quantity}, nil
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
