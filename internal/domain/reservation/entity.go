package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("reservation: quantity must be greater than zero")
	ErrInvalidReference = errors.New("reservation: payment reference is required")
)

// Reservation is a pending hold of stock for one (session, sku) pair. It only
// exists while pending: resolving it deletes the row.
type Reservation struct {
	id        uuid.UUID
	sessionID uuid.UUID
	skuID     uuid.UUID
	reference Reference
	quantity  int
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(sessionID, skuID uuid.UUID, quantity int, hold Hold) (*Reservation, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if hold.Reference == "" {
		return nil, ErrInvalidReference
	}
	return &Reservation{
		id:        uuid.New(),
		sessionID: sessionID,
		skuID:     skuID,
		reference: hold.Reference,
		quantity:  quantity,
		expiresAt: hold.ExpiresAt,
		createdAt: hold.IssuedAt,
		updatedAt: hold.IssuedAt,
	}, nil
}

func ReconstructReservation(
	id, sessionID, skuID uuid.UUID,
	reference Reference,
	quantity int,
	expiresAt, createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		sessionID: sessionID,
		skuID:     skuID,
		reference: reference,
		quantity:  quantity,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reissue replaces quantity, reference and expiry in place. The inventory
// delta for the quantity change is the caller's job.
func (r *Reservation) Reissue(quantity int, hold Hold) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if hold.Reference == "" {
		return ErrInvalidReference
	}
	r.quantity = quantity
	r.reference = hold.Reference
	r.expiresAt = hold.ExpiresAt
	r.updatedAt = hold.IssuedAt
	return nil
}

// IsDue reports whether the hold lapses before now+lookahead.
func (r *Reservation) IsDue(now time.Time, lookahead time.Duration) bool {
	return !r.expiresAt.After(now.Add(lookahead))
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) SessionID() uuid.UUID { return r.sessionID }
func (r *Reservation) SKUID() uuid.UUID     { return r.skuID }
func (r *Reservation) Reference() Reference { return r.reference }
func (r *Reservation) Quantity() int        { return r.quantity }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
