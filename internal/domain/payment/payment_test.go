//go:build unit

package payment_test

import (
	"testing"
	"time"

	"storefront/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_IsRejected(t *testing.T) {
	testCases := []struct {
		outcome payment.Outcome
		want    bool
	}{
		{payment.OutcomeConfirmed, false},
		{payment.OutcomeNotFound, true},
		{payment.OutcomeBadRequest, true},
		{payment.OutcomeFailed, true},
		{payment.OutcomeAbandoned, false},
		{payment.OutcomeTransient, false},
	}

	for _, tc := range testCases {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.outcome.IsRejected())
		})
	}
}

func TestOutcome_ReleasesHold(t *testing.T) {
	testCases := []struct {
		outcome     payment.Outcome
		wantLive    bool
		wantExpired bool
	}{
		{payment.OutcomeConfirmed, false, false},
		{payment.OutcomeNotFound, true, true},
		{payment.OutcomeBadRequest, true, true},
		{payment.OutcomeFailed, true, true},
		{payment.OutcomeAbandoned, false, true},
		{payment.OutcomeTransient, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.wantLive, tc.outcome.ReleasesHold(false), "hold still live")
			assert.Equal(t, tc.wantExpired, tc.outcome.ReleasesHold(true), "hold expired")
		})
	}
}

func TestNewRecord(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, err := payment.NewRecord(payment.Verification{
		Reference:     "chk_1",
		Outcome:       payment.OutcomeConfirmed,
		CustomerEmail: "  Buyer@Example.com ",
		Amount:        decimal.RequireFromString("107.50"),
		Currency:      "NGN",
		PaidAt:        paidAt,
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", rec.CustomerEmail)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("107.5")))

	_, err = payment.NewRecord(payment.Verification{Reference: "chk_1", Outcome: payment.OutcomeFailed})
	assert.ErrorIs(t, err, payment.ErrNotConfirmed)

	_, err = payment.NewRecord(payment.Verification{Reference: "chk_1", Outcome: payment.OutcomeConfirmed})
	assert.ErrorIs(t, err, payment.ErrMissingEmail)
}

func TestNewOrder(t *testing.T) {
	rec := &payment.Record{ID: uuid.New(), CustomerEmail: "buyer@example.com"}
	skuA, skuB := uuid.New(), uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	order, err := payment.NewOrder(rec, []payment.Line{
		{SKUID: skuA, Quantity: 1},
		{SKUID: skuB, Quantity: 2},
		{SKUID: skuA, Quantity: 3},
	}, createdAt)
	require.NoError(t, err)

	want := []payment.Line{{SKUID: skuA, Quantity: 4}, {SKUID: skuB, Quantity: 2}}
	if diff := cmp.Diff(want, order.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, rec.ID, order.PaymentID)

	_, err = payment.NewOrder(rec, nil, createdAt)
	assert.ErrorIs(t, err, payment.ErrNoOrderLines)

	_, err = payment.NewOrder(rec, []payment.Line{{SKUID: skuA, Quantity: 0}}, createdAt)
	assert.ErrorIs(t, err, payment.ErrInvalidLineAmount)
}
