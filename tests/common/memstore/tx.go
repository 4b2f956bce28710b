//go:build unit || e2e

package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/inventory"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st     *state
	faults map[Op]fault
}

func (t *memTx) fault(op Op, key string) error {
	f, ok := t.faults[op]
	if !ok {
		return nil
	}
	if f.key == "" || f.key == key {
		return f.err
	}
	return nil
}

func (t *memTx) Inventory() shared.InventoryRepository        { return inventoryRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t} }
func (t *memTx) Sessions() shared.SessionRepository           { return sessionRepo{t} }
func (t *memTx) Cart() shared.CartRepository                  { return cartRepo{t} }
func (t *memTx) Orders() shared.OrderRepository               { return orderRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// inventory

type inventoryRepo struct{ tx *memTx }

func (r inventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.SKU, error) {
	row, ok := r.tx.st.skus[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "sku not found")
	}
	return toSKU(row), nil
}

func (r inventoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*inventory.SKU, error) {
	out := make([]*inventory.SKU, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.tx.st.skus[id]; ok {
			out = append(out, toSKU(row))
		}
	}
	return out, nil
}

func (r inventoryRepo) Decrement(_ context.Context, id uuid.UUID, qty int) (int, error) {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return 0, err
	}
	if err := r.tx.fault(OpDecrement, id.String()); err != nil {
		return 0, err
	}
	row, ok := r.tx.st.skus[id]
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "sku not found")
	}
	if row.quantity-qty < 0 {
		return 0, infra.NewRepoErr(infra.KindCheckViolated, "skus_quantity_check")
	}
	row.quantity -= qty
	r.tx.st.skus[id] = row
	return row.quantity, nil
}

func (r inventoryRepo) Increment(_ context.Context, id uuid.UUID, qty int) (int, error) {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return 0, err
	}
	if err := r.tx.fault(OpIncrement, id.String()); err != nil {
		return 0, err
	}
	row, ok := r.tx.st.skus[id]
	if !ok {
		return 0, infra.NewRepoErr(infra.KindNotFound, "sku not found")
	}
	row.quantity += qty
	r.tx.st.skus[id] = row
	return row.quantity, nil
}

func toSKU(row skuRow) *inventory.SKU {
	return inventory.ReconstructSKU(row.id, row.code, row.name, row.unitPrice, row.quantity, row.updatedAt)
}

// reservations

type reservationRepo struct{ tx *memTx }

func (r reservationRepo) ListBySessionForUpdate(_ context.Context, sessionID uuid.UUID) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	for _, row := range r.tx.st.reservations {
		if row.sessionID == sessionID {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b reservationRow) int { return compareIDs(a.skuID, b.skuID) })
	return toReservations(rows), nil
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.st.sessions[res.SessionID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "reservations_session_id_fkey")
	}
	if _, ok := r.tx.st.skus[res.SKUID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "reservations_sku_id_fkey")
	}
	for _, row := range r.tx.st.reservations {
		if row.sessionID == res.SessionID() && row.skuID == res.SKUID() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "reservations_session_id_sku_id_key")
		}
	}
	r.tx.st.reservations[res.ID()] = fromReservation(res)
	return nil
}

func (r reservationRepo) UpdateHold(_ context.Context, res *reservation.Reservation) error {
	row, ok := r.tx.st.reservations[res.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	row.quantity = res.Quantity()
	row.reference = res.Reference()
	row.expiresAt = res.ExpiresAt()
	row.updatedAt = res.UpdatedAt()
	r.tx.st.reservations[res.ID()] = row
	return nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.reservations[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	delete(r.tx.st.reservations, id)
	return nil
}

func (r reservationRepo) DeleteHeld(_ context.Context, id uuid.UUID, ref reservation.Reference) (shared.Released, bool, error) {
	if err := r.tx.fault(OpDeleteHeld, ref.String()); err != nil {
		return shared.Released{}, false, err
	}
	row, ok := r.tx.st.reservations[id]
	if !ok || row.reference != ref {
		return shared.Released{}, false, nil
	}
	delete(r.tx.st.reservations, id)
	return shared.Released{SKUID: row.skuID, Quantity: row.quantity}, true, nil
}

func (r reservationRepo) ListExpiring(_ context.Context, before time.Time, limit int) ([]*reservation.Reservation, error) {
	if err := r.tx.fault(OpListExpiring, ""); err != nil {
		return nil, err
	}
	var rows []reservationRow
	for _, row := range r.tx.st.reservations {
		if !row.expiresAt.After(before) {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b reservationRow) int {
		if c := a.expiresAt.Compare(b.expiresAt); c != 0 {
			return c
		}
		return compareIDs(a.id, b.id)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return toReservations(rows), nil
}

func fromReservation(res *reservation.Reservation) reservationRow {
	return reservationRow{
		id:        res.ID(),
		sessionID: res.SessionID(),
		skuID:     res.SKUID(),
		reference: res.Reference(),
		quantity:  res.Quantity(),
		expiresAt: res.ExpiresAt(),
		createdAt: res.CreatedAt(),
		updatedAt: res.UpdatedAt(),
	}
}

func toReservations(rows []reservationRow) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = reservation.ReconstructReservation(
			row.id, row.sessionID, row.skuID, row.reference, row.quantity,
			row.expiresAt, row.createdAt, row.updatedAt,
		)
	}
	return out
}

// sessions

type sessionRepo struct{ tx *memTx }

func (r sessionRepo) Create(_ context.Context, s *cart.Session) error {
	for _, row := range r.tx.st.sessions {
		if row.token == s.Token() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "sessions_token_key")
		}
	}
	r.tx.st.sessions[s.ID()] = sessionRow{id: s.ID(), token: s.Token(), createdAt: s.CreatedAt(), expiresAt: s.ExpiresAt()}
	return nil
}

func (r sessionRepo) FindByToken(_ context.Context, token string) (*cart.Session, error) {
	for _, row := range r.tx.st.sessions {
		if row.token == token {
			return cart.ReconstructSession(row.id, row.token, row.createdAt, row.expiresAt), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "session not found")
}

func (r sessionRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	holding := make(map[uuid.UUID]bool)
	for _, row := range r.tx.st.reservations {
		holding[row.sessionID] = true
	}

	var rows []sessionRow
	for _, row := range r.tx.st.sessions {
		if !row.expiresAt.After(now) && !holding[row.id] {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b sessionRow) int {
		if c := a.expiresAt.Compare(b.expiresAt); c != 0 {
			return c
		}
		return compareIDs(a.id, b.id)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.id
	}
	return ids, nil
}

func (r sessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.sessions[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "session not found")
	}
	for _, row := range r.tx.st.reservations {
		if row.sessionID == id {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "reservations_session_id_fkey")
		}
	}
	delete(r.tx.st.cartItems, id)
	delete(r.tx.st.sessions, id)
	return nil
}

// cart

type cartRepo struct{ tx *memTx }

func (r cartRepo) ListItems(_ context.Context, sessionID uuid.UUID) ([]cart.Item, error) {
	items := make([]cart.Item, 0, len(r.tx.st.cartItems[sessionID]))
	for skuID, qty := range r.tx.st.cartItems[sessionID] {
		sku := r.tx.st.skus[skuID]
		items = append(items, cart.Item{
			SKUID:     skuID,
			SKUCode:   sku.code,
			SKUName:   sku.name,
			UnitPrice: sku.unitPrice,
			Quantity:  qty,
		})
	}
	slices.SortFunc(items, func(a, b cart.Item) int { return compareIDs(a.SKUID, b.SKUID) })
	return items, nil
}

func (r cartRepo) Upsert(_ context.Context, sessionID uuid.UUID, item cart.Item) error {
	if _, ok := r.tx.st.sessions[sessionID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "cart_items_session_id_fkey")
	}
	if _, ok := r.tx.st.skus[item.SKUID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "cart_items_sku_id_fkey")
	}
	items, ok := r.tx.st.cartItems[sessionID]
	if !ok {
		items = make(map[uuid.UUID]int)
		r.tx.st.cartItems[sessionID] = items
	}
	items[item.SKUID] = item.Quantity
	return nil
}

func (r cartRepo) Remove(_ context.Context, sessionID, skuID uuid.UUID) (bool, error) {
	items := r.tx.st.cartItems[sessionID]
	if _, ok := items[skuID]; !ok {
		return false, nil
	}
	delete(items, skuID)
	return true, nil
}

func (r cartRepo) DeleteBySession(_ context.Context, sessionID uuid.UUID) (int, error) {
	n := len(r.tx.st.cartItems[sessionID])
	delete(r.tx.st.cartItems, sessionID)
	return n, nil
}

// orders

type orderRepo struct{ tx *memTx }

func (r orderRepo) InsertPaymentIfAbsent(_ context.Context, rec *payment.Record) (bool, error) {
	key := paymentKey{email: rec.CustomerEmail, reference: rec.Reference}
	if _, ok := r.tx.st.payments[key]; ok {
		return false, nil
	}
	r.tx.st.payments[key] = *rec
	return true, nil
}

func (r orderRepo) FindPayment(_ context.Context, email string, ref reservation.Reference) (*payment.Record, error) {
	rec, ok := r.tx.st.payments[paymentKey{email: email, reference: ref}]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "payment not found")
	}
	return &rec, nil
}

func (r orderRepo) CreateOrder(_ context.Context, order *payment.Order) error {
	if err := r.tx.fault(OpCreateOrder, ""); err != nil {
		return err
	}
	for _, o := range r.tx.st.orders {
		if o.PaymentID == order.PaymentID {
			return infra.NewRepoErr(infra.KindDuplicateKey, "orders_payment_id_key")
		}
	}
	r.tx.st.orders = append(r.tx.st.orders, *order)
	return nil
}

// notifications

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.tx.st.jobs = append(r.tx.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}
