package shared

import (
	"context"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/inventory"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: READ COMMITTED transaction with retry on serialization failure and deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Inventory() InventoryRepository
	Reservations() ReservationRepository
	Sessions() SessionRepository
	Cart() CartRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
}

// InventoryRepository is the only writer of available stock. Decrement fails
// with infra.KindCheckViolated when it would drive stock below zero.
type InventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.SKU, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*inventory.SKU, error)
	Decrement(ctx context.Context, id uuid.UUID, qty int) (int, error)
	Increment(ctx context.Context, id uuid.UUID, qty int) (int, error)
}

// Released is what a conditional delete removed from the ledger.
type Released struct {
	SKUID    uuid.UUID
	Quantity int
}

type ReservationRepository interface {
	ListBySessionForUpdate(ctx context.Context, sessionID uuid.UUID) ([]*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	UpdateHold(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteHeld deletes the row only while it still carries ref. deleted is
	// false when the row is gone or was reissued under another reference.
	DeleteHeld(ctx context.Context, id uuid.UUID, ref reservation.Reference) (released Released, deleted bool, err error)
	ListExpiring(ctx context.Context, before time.Time, limit int) ([]*reservation.Reservation, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *cart.Session) error
	FindByToken(ctx context.Context, token string) (*cart.Session, error)
	// ListExpired skips sessions that still own reservations.
	ListExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CartRepository interface {
	ListItems(ctx context.Context, sessionID uuid.UUID) ([]cart.Item, error)
	Upsert(ctx context.Context, sessionID uuid.UUID, item cart.Item) error
	Remove(ctx context.Context, sessionID, skuID uuid.UUID) (bool, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int, error)
}

type OrderRepository interface {
	// InsertPaymentIfAbsent reports false when (email, reference) is already recorded.
	InsertPaymentIfAbsent(ctx context.Context, rec *payment.Record) (bool, error)
	FindPayment(ctx context.Context, email string, ref reservation.Reference) (*payment.Record, error)
	CreateOrder(ctx context.Context, order *payment.Order) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
