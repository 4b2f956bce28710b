package jobs

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	notificationKind    = "email"
	topicOrderConfirmed = "order_confirmed"
)

type OrderFinalizer struct {
	clock clock.Clock
}

func NewOrderFinalizer(clk clock.Clock) *OrderFinalizer {
	return &OrderFinalizer{clock: clk}
}

type orderConfirmedPayload struct {
	Type          string          `json:"type"`
	OrderID       uuid.UUID       `json:"order_id"`
	PaymentID     uuid.UUID       `json:"payment_id"`
	Reference     string          `json:"reference"`
	CustomerEmail string          `json:"customer_email"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Lines         []payloadLine   `json:"lines"`
}

type payloadLine struct {
	SKUID    uuid.UUID `json:"sku_id"`
	Quantity int       `json:"quantity"`
}

// Finalize records a confirmed payment once per (customer email, reference).
// created is false when the payment was already recorded; nothing else is
// written in that case. It runs inside the caller's transaction.
func (f *OrderFinalizer) Finalize(
	ctx context.Context,
	tx shared.Tx,
	v payment.Verification,
	held []*reservation.Reservation,
) (*payment.Order, bool, error) {
	record, err := payment.NewRecord(v)
	if err != nil {
		return nil, false, err
	}

	created, err := tx.Orders().InsertPaymentIfAbsent(ctx, record)
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to record payment")
	}
	if !created {
		return nil, false, nil
	}

	now := f.clock.Now()
	order, err := payment.NewOrder(record, orderLines(v, held), now)
	if err != nil {
		return nil, false, err
	}
	if err := tx.Orders().CreateOrder(ctx, order); err != nil {
		return nil, false, errs.Wrap(err, "failed to create order")
	}

	payload, err := json.Marshal(newOrderConfirmedPayload(order, record))
	if err != nil {
		return nil, false, err
	}
	if err := tx.Notifications().CreateJob(ctx, notificationKind, topicOrderConfirmed, payload, now); err != nil {
		return nil, false, errs.Wrap(err, "failed to enqueue order notification")
	}

	return order, true, nil
}

// orderLines prefers what the customer paid for; the held rows are the
// fallback when the gateway metadata carries no items.
func orderLines(v payment.Verification, held []*reservation.Reservation) []payment.Line {
	if len(v.Lines) > 0 {
		return v.Lines
	}
	lines := make([]payment.Line, 0, len(held))
	for _, r := range held {
		lines = append(lines, payment.Line{SKUID: r.SKUID(), Quantity: r.Quantity()})
	}
	return lines
}

func newOrderConfirmedPayload(order *payment.Order, record *payment.Record) orderConfirmedPayload {
	lines := make([]payloadLine, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = payloadLine{SKUID: l.SKUID, Quantity: l.Quantity}
	}
	return orderConfirmedPayload{
		Type:          topicOrderConfirmed,
		OrderID:       order.ID,
		PaymentID:     record.ID,
		Reference:     record.Reference.String(),
		CustomerEmail: record.CustomerEmail,
		Amount:        record.Amount,
		Currency:      record.Currency,
		Lines:         lines,
	}
}
