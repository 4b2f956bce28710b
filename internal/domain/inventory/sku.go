package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("inventory: quantity must be greater than zero")
	ErrInvalidSKUCode    = errors.New("inventory: sku code is required")
	ErrNegativeStock     = errors.New("inventory: available stock cannot be negative")
	ErrNegativeUnitPrice = errors.New("inventory: unit price cannot be negative")
)

// SKU is a stock keeping unit with its available (unreserved) quantity.
type SKU struct {
	id        uuid.UUID
	code      string
	name      string
	unitPrice decimal.Decimal
	available int
	updatedAt time.Time
}

func NewSKU(code, name string, unitPrice decimal.Decimal, available int) (*SKU, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidSKUCode
	}
	if available < 0 {
		return nil, ErrNegativeStock
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativeUnitPrice
	}
	return &SKU{
		id:        uuid.New(),
		code:      code,
		name:      name,
		unitPrice: unitPrice,
		available: available,
	}, nil
}

func ReconstructSKU(id uuid.UUID, code, name string, unitPrice decimal.Decimal, available int, updatedAt time.Time) *SKU {
	return &SKU{
		id:        id,
		code:      code,
		name:      name,
		unitPrice: unitPrice,
		available: available,
		updatedAt: updatedAt,
	}
}

// CanFulfil reports whether qty more units can be held right now. It is a
// pre-check only; the storage constraint has the final word.
func (s *SKU) CanFulfil(qty int) bool {
	return qty <= s.available
}

func (s *SKU) ID() uuid.UUID              { return s.id }
func (s *SKU) Code() string               { return s.code }
func (s *SKU) Name() string               { return s.name }
func (s *SKU) UnitPrice() decimal.Decimal { return s.unitPrice }
func (s *SKU) Available() int             { return s.available }
func (s *SKU) UpdatedAt() time.Time       { return s.updatedAt }

func ValidateQuantity(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
