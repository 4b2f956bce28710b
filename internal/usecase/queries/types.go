package queries

import (
	"time"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionView is the slice of a session the read side needs.
type SessionView struct {
	ID        uuid.UUID
	ExpiresAt time.Time
}

type CartItemView struct {
	SKUID     uuid.UUID       `json:"sku_id"`
	SKUCode   string          `json:"sku_code"`
	SKUName   string          `json:"sku_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type CartView struct {
	Items     []*CartItemView
	Currency  string
	Quote     pricing.Quote
	ExpiresAt time.Time
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	SKUID     uuid.UUID `json:"sku_id"`
	SKUCode   string    `json:"sku_code"`
	SKUName   string    `json:"sku_name"`
	Reference string    `json:"reference"`
	Quantity  int       `json:"quantity"`
	ExpiresAt time.Time `json:"expires_at"`
}
