package queries

import (
	"context"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationViewRepo interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	ListBySession(ctx context.Context, sessionToken string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	sessions SessionViewRepo
	repo     ReservationViewRepo
	clock    clock.Clock
}

func NewReservationQueries(sessions SessionViewRepo, repo ReservationViewRepo, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{sessions: sessions, repo: repo, clock: clk}
}

func (q *reservationQueriesImpl) ListBySession(ctx context.Context, sessionToken string) ([]*ReservationView, error) {
	session, err := resolveSession(ctx, q.sessions, q.clock, sessionToken)
	if err != nil {
		return nil, err
	}

	views, err := q.repo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}
