package payment

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotConfirmed      = errors.New("payment: verification is not confirmed")
	ErrMissingEmail      = errors.New("payment: customer email is required")
	ErrNoOrderLines      = errors.New("payment: order must have at least one line")
	ErrInvalidLineAmount = errors.New("payment: order line quantity must be greater than zero")
)

// Record is a confirmed payment, unique per (customer email, reference).
type Record struct {
	ID            uuid.UUID
	Reference     reservation.Reference
	CustomerEmail string
	Amount        decimal.Decimal
	Currency      string
	PaidAt        time.Time
}

func NewRecord(v Verification) (*Record, error) {
	if v.Outcome != OutcomeConfirmed {
		return nil, ErrNotConfirmed
	}
	email := strings.ToLower(strings.TrimSpace(v.CustomerEmail))
	if email == "" {
		return nil, ErrMissingEmail
	}
	return &Record{
		ID:            uuid.New(),
		Reference:     v.Reference,
		CustomerEmail: email,
		Amount:        v.Amount,
		Currency:      v.Currency,
		PaidAt:        v.PaidAt,
	}, nil
}

type Order struct {
	ID            uuid.UUID
	PaymentID     uuid.UUID
	CustomerEmail string
	Lines         []Line
	CreatedAt     time.Time
}

// NewOrder merges duplicate SKUs so every order has one line per SKU.
func NewOrder(record *Record, lines []Line, createdAt time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoOrderLines
	}
	merged := make([]Line, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidLineAmount
		}
		if i, ok := index[l.SKUID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.SKUID] = len(merged)
		merged = append(merged, l)
	}
	return &Order{
		ID:            uuid.New(),
		PaymentID:     record.ID,
		CustomerEmail: record.CustomerEmail,
		Lines:         merged,
		CreatedAt:     createdAt,
	}, nil
}
