//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"storefront/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func held(t *testing.T, sessionID, skuID uuid.UUID, qty int) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(sessionID, skuID, qty, reservation.Hold{
		Reference: "chk_old",
		IssuedAt:  now,
		ExpiresAt: now.Add(15 * time.Minute),
	})
	require.NoError(t, err)
	return r
}

type step struct {
	Kind    reservation.ActionKind
	SKUID   uuid.UUID
	Desired int
	Delta   int
}

func steps(actions []reservation.Action) []step {
	out := make([]step, len(actions))
	for i, a := range actions {
		out[i] = step{Kind: a.Kind, SKUID: a.SKUID, Desired: a.Desired, Delta: a.Delta}
	}
	return out
}

func TestPlan(t *testing.T) {
	session := uuid.New()
	skuA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	skuB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	skuC := uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	skuD := uuid.MustParse("00000000-0000-0000-0000-00000000000d")

	testCases := []struct {
		name     string
		demands  []reservation.Demand
		existing func(t *testing.T) []*reservation.Reservation
		want     []step
	}{
		{
			name:     "new cart reserves every sku",
			demands:  []reservation.Demand{{SKUID: skuB, Quantity: 2}, {SKUID: skuA, Quantity: 1}},
			existing: func(*testing.T) []*reservation.Reservation { return nil },
			want: []step{
				{Kind: reservation.ActionReserve, SKUID: skuA, Desired: 1, Delta: 1},
				{Kind: reservation.ActionReserve, SKUID: skuB, Desired: 2, Delta: 2},
			},
		},
		{
			name: "grow, shrink, refresh and release in one pass",
			demands: []reservation.Demand{
				{SKUID: skuA, Quantity: 6},
				{SKUID: skuB, Quantity: 1},
				{SKUID: skuC, Quantity: 2},
			},
			existing: func(t *testing.T) []*reservation.Reservation {
				return []*reservation.Reservation{
					held(t, session, skuA, 4),
					held(t, session, skuB, 3),
					held(t, session, skuC, 2),
					held(t, session, skuD, 5),
				}
			},
			want: []step{
				{Kind: reservation.ActionGrow, SKUID: skuA, Desired: 6, Delta: 2},
				{Kind: reservation.ActionShrink, SKUID: skuB, Desired: 1, Delta: 2},
				{Kind: reservation.ActionRefresh, SKUID: skuC, Desired: 2, Delta: 0},
				{Kind: reservation.ActionRelease, SKUID: skuD, Desired: 0, Delta: 5},
			},
		},
		{
			name:    "empty cart releases every hold",
			demands: nil,
			existing: func(t *testing.T) []*reservation.Reservation {
				return []*reservation.Reservation{held(t, session, skuC, 1)}
			},
			want: []step{
				{Kind: reservation.ActionRelease, SKUID: skuC, Delta: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actions, err := reservation.Plan(tc.demands, tc.existing(t))
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, steps(actions)); diff != "" {
				t.Errorf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlan_ActionsCarryExistingReservation(t *testing.T) {
	session := uuid.New()
	sku := uuid.New()
	existing := held(t, session, sku, 2)

	actions, err := reservation.Plan([]reservation.Demand{{SKUID: sku, Quantity: 3}}, []*reservation.Reservation{existing})
	require.NoError(t, err)
	require.Len(t, actions, 1)

	assert.Same(t, existing, actions[0].Existing)
	assert.True(t, actions[0].TakesStock())
	assert.False(t, actions[0].ReturnsStock())
}

func TestPlan_Errors(t *testing.T) {
	session := uuid.New()
	sku := uuid.New()

	t.Run("duplicate demand", func(t *testing.T) {
		_, err := reservation.Plan([]reservation.Demand{{SKUID: sku, Quantity: 1}, {SKUID: sku, Quantity: 2}}, nil)
		assert.ErrorIs(t, err, reservation.ErrDuplicateDemand)
	})

	t.Run("duplicate reservation", func(t *testing.T) {
		_, err := reservation.Plan(nil, []*reservation.Reservation{held(t, session, sku, 1), held(t, session, sku, 1)})
		assert.ErrorIs(t, err, reservation.ErrDuplicateReservation)
	})

	t.Run("non-positive demand", func(t *testing.T) {
		_, err := reservation.Plan([]reservation.Demand{{SKUID: sku, Quantity: 0}}, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})
}
