package repository

import (
	"context"
	"time"

	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	ListReservationsBySessionForUpdate(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) ([]sqlc.Reservation, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservationHold(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationHoldParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteReservationByReference(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteReservationByReferenceParams) (sqlc.DeleteReservationByReferenceRow, error)
	ListExpiringReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiringReservationsParams) ([]sqlc.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// ListBySessionForUpdate locks the session's pending rows until commit.
func (r *ReservationRepository) ListBySessionForUpdate(ctx context.Context, sessionID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsBySessionForUpdate(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock session reservations", err)
	}
	return reservationsFromRows(rows), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateHold(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationHold(ctx, r.db, converter.ReservationHoldToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation hold", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) DeleteHeld(ctx context.Context, id uuid.UUID, ref reservation.Reference) (shared.Released, bool, error) {
	row, err := r.queries.DeleteReservationByReference(ctx, r.db, sqlc.DeleteReservationByReferenceParams{
		ID:        id,
		Reference: ref.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.Released{}, false, nil
		}
		return shared.Released{}, false, infra.WrapRepoErr("failed to delete held reservation", err)
	}
	return shared.Released{SKUID: row.SkuID, Quantity: int(row.Quantity)}, true, nil
}

func (r *ReservationRepository) ListExpiring(ctx context.Context, before time.Time, limit int) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListExpiringReservations(ctx, r.db, sqlc.ListExpiringReservationsParams{
		Before:   pgconv.TimeToPgtype(before),
		RowLimit: converter.Int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expiring reservations", err)
	}
	return reservationsFromRows(rows), nil
}

func reservationsFromRows(rows []sqlc.Reservation) []*reservation.Reservation {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = converter.ReservationFromInfra(row)
	}
	return result
}
