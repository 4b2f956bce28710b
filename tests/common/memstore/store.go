//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions are
// serialized and work on a copy of the state that replaces the committed
// state only when fn returns nil. Constraint failures are reported with the
// same infra error kinds the Postgres repositories use.
package memstore

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Op string

const (
	OpDecrement    Op = "inventory.decrement"
	OpIncrement    Op = "inventory.increment"
	OpDeleteHeld   Op = "reservations.delete_held"
	OpListExpiring Op = "reservations.list_expiring"
	OpCreateOrder  Op = "orders.create"
)

type skuRow struct {
	id        uuid.UUID
	code      string
	name      string
	unitPrice decimal.Decimal
	quantity  int
	updatedAt time.Time
}

type sessionRow struct {
	id        uuid.UUID
	token     string
	createdAt time.Time
	expiresAt time.Time
}

type reservationRow struct {
	id        uuid.UUID
	sessionID uuid.UUID
	skuID     uuid.UUID
	reference reservation.Reference
	quantity  int
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

type paymentKey struct {
	email     string
	reference reservation.Reference
}

// Job is an enqueued notification.
type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	skus         map[uuid.UUID]skuRow
	sessions     map[uuid.UUID]sessionRow
	cartItems    map[uuid.UUID]map[uuid.UUID]int
	reservations map[uuid.UUID]reservationRow
	payments     map[paymentKey]payment.Record
	orders       []payment.Order
	jobs         []Job
}

func newState() *state {
	return &state{
		skus:         make(map[uuid.UUID]skuRow),
		sessions:     make(map[uuid.UUID]sessionRow),
		cartItems:    make(map[uuid.UUID]map[uuid.UUID]int),
		reservations: make(map[uuid.UUID]reservationRow),
		payments:     make(map[paymentKey]payment.Record),
	}
}

func (s *state) clone() *state {
	c := &state{
		skus:         make(map[uuid.UUID]skuRow, len(s.skus)),
		sessions:     make(map[uuid.UUID]sessionRow, len(s.sessions)),
		cartItems:    make(map[uuid.UUID]map[uuid.UUID]int, len(s.cartItems)),
		reservations: make(map[uuid.UUID]reservationRow, len(s.reservations)),
		payments:     make(map[paymentKey]payment.Record, len(s.payments)),
		orders:       slices.Clone(s.orders),
		jobs:         slices.Clone(s.jobs),
	}
	for k, v := range s.skus {
		c.skus[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, items := range s.cartItems {
		m := make(map[uuid.UUID]int, len(items))
		for sku, qty := range items {
			m[sku] = qty
		}
		c.cartItems[k] = m
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	return c
}

type fault struct {
	key string
	err error
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu     sync.Mutex
	state  *state
	faults map[Op]fault

	commits int
}

func New() *Store {
	return &Store{
		state:  newState(),
		faults: make(map[Op]fault),
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work, faults: s.faults}); err != nil {
		return err
	}
	s.state = work
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &memTx{st: s.state.clone(), faults: s.faults})
}

// Fail makes op return err. key narrows the fault to one SKU id or payment
// reference; an empty key matches every call.
func (s *Store) Fail(op Op, key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = fault{key: key, err: err}
}

func (s *Store) ClearFaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[Op]fault)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Seeding

func (s *Store) AddSKU(code string, unitPrice decimal.Decimal, quantity int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.skus[id] = skuRow{id: id, code: code, name: code, unitPrice: unitPrice, quantity: quantity}
	return id
}

func (s *Store) AddSession(token string, createdAt, expiresAt time.Time) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.sessions[id] = sessionRow{id: id, token: token, createdAt: createdAt, expiresAt: expiresAt}
	return id
}

func (s *Store) SetCartItem(sessionID, skuID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.state.cartItems[sessionID]
	if !ok {
		items = make(map[uuid.UUID]int)
		s.state.cartItems[sessionID] = items
	}
	if quantity <= 0 {
		delete(items, skuID)
		return
	}
	items[skuID] = quantity
}

// Snapshots

func (s *Store) Available(skuID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.skus[skuID].quantity
}

// ReservationView is a read-only copy of a ledger row.
type ReservationView struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	SKUID     uuid.UUID
	Reference reservation.Reference
	Quantity  int
	ExpiresAt time.Time
}

func (s *Store) Reservations() []ReservationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]ReservationView, 0, len(s.state.reservations))
	for _, r := range s.state.reservations {
		views = append(views, ReservationView{
			ID:        r.id,
			SessionID: r.sessionID,
			SKUID:     r.skuID,
			Reference: r.reference,
			Quantity:  r.quantity,
			ExpiresAt: r.expiresAt,
		})
	}
	slices.SortFunc(views, func(a, b ReservationView) int {
		return bytes.Compare(a.SKUID[:], b.SKUID[:])
	})
	return views
}

// HeldQuantity sums the units the ledger holds for skuID.
func (s *Store) HeldQuantity(skuID uuid.UUID) int {
	total := 0
	for _, r := range s.Reservations() {
		if r.SKUID == skuID {
			total += r.Quantity
		}
	}
	return total
}

func (s *Store) HasSession(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.sessions[id]
	return ok
}

func (s *Store) CartSize(sessionID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.cartItems[sessionID])
}

func (s *Store) Payments() []payment.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payment.Record, 0, len(s.state.payments))
	for _, p := range s.state.payments {
		out = append(out, p)
	}
	return out
}

func (s *Store) Orders() []payment.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.orders)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.jobs)
}
