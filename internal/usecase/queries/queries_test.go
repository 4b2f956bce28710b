//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
	mockqueries "storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCartQueries_Get(t *testing.T) {
	sessionID := uuid.New()
	live := &queries.SessionView{ID: sessionID, ExpiresAt: now.Add(time.Hour)}
	items := []*queries.CartItemView{
		{SKUID: uuid.New(), SKUCode: "SKU-X", UnitPrice: decimal.RequireFromString("1000"), Quantity: 2},
		{SKUID: uuid.New(), SKUCode: "SKU-Y", UnitPrice: decimal.RequireFromString("250.50"), Quantity: 1},
	}

	testCases := []struct {
		name      string
		token     string
		setup     func(s *mockqueries.MockSessionViewRepo, c *mockqueries.MockCartViewRepo)
		wantErr   error
		wantTotal string
	}{
		{
			name:  "prices the cart",
			token: "token",
			setup: func(s *mockqueries.MockSessionViewRepo, c *mockqueries.MockCartViewRepo) {
				s.EXPECT().FindByToken(gomock.Any(), "token").Return(live, nil)
				c.EXPECT().ListItems(gomock.Any(), sessionID).Return(items, nil)
			},
			wantTotal: "2475.55",
		},
		{
			name:    "empty token",
			token:   "",
			setup:   func(s *mockqueries.MockSessionViewRepo, c *mockqueries.MockCartViewRepo) {},
			wantErr: shared.ErrSessionNotFound,
		},
		{
			name:  "unknown session",
			token: "token",
			setup: func(s *mockqueries.MockSessionViewRepo, c *mockqueries.MockCartViewRepo) {
				s.EXPECT().FindByToken(gomock.Any(), "token").Return(nil, infra.NewRepoErr(infra.KindNotFound, "session not found"))
			},
			wantErr: shared.ErrSessionNotFound,
		},
		{
			name:  "expired session",
			token: "token",
			setup: func(s *mockqueries.MockSessionViewRepo, c *mockqueries.MockCartViewRepo) {
				s.EXPECT().FindByToken(gomock.Any(), "token").Return(&queries.SessionView{ID: sessionID, ExpiresAt: now}, nil)
			},
			wantErr: shared.ErrSessionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mockqueries.NewMockSessionViewRepo(ctrl)
			cart := mockqueries.NewMockCartViewRepo(ctrl)
			tc.setup(sessions, cart)

			rates := pricing.NewStaticRates(decimal.RequireFromString("0.1"), decimal.RequireFromString("0"))
			q := queries.NewCartQueries(sessions, cart, rates, "NGN", clock.NewMockClock(now))

			view, err := q.Get(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "NGN", view.Currency)
			assert.Len(t, view.Items, 2)
			assert.Equal(t, "2250.50", view.Quote.Subtotal.StringFixed(2))
			assert.Equal(t, tc.wantTotal, view.Quote.Total.StringFixed(2))
		})
	}
}

func TestReservationQueries_ListBySession(t *testing.T) {
	sessionID := uuid.New()

	t.Run("lists the session's holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mockqueries.NewMockSessionViewRepo(ctrl)
		repo := mockqueries.NewMockReservationViewRepo(ctrl)

		views := []*queries.ReservationView{{ID: uuid.New(), Reference: "chk_1", Quantity: 3}}
		sessions.EXPECT().FindByToken(gomock.Any(), "token").Return(&queries.SessionView{ID: sessionID, ExpiresAt: now.Add(time.Hour)}, nil)
		repo.EXPECT().ListBySession(gomock.Any(), sessionID).Return(views, nil)

		got, err := queries.NewReservationQueries(sessions, repo, clock.NewMockClock(now)).ListBySession(context.Background(), "token")
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("storage errors are wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mockqueries.NewMockSessionViewRepo(ctrl)
		repo := mockqueries.NewMockReservationViewRepo(ctrl)

		cause := errors.New("connection reset")
		sessions.EXPECT().FindByToken(gomock.Any(), "token").Return(nil, cause)

		_, err := queries.NewReservationQueries(sessions, repo, clock.NewMockClock(now)).ListBySession(context.Background(), "token")
		assert.ErrorIs(t, err, cause)
		assert.False(t, errs.Is(err, shared.ErrSessionNotFound))
	})
}
