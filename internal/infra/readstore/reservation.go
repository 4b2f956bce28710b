package readstore

import (
	"context"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	ListReservationViewsBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) ([]sqlc.ListReservationViewsBySessionRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by session", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:        row.ID,
			SKUID:     row.SkuID,
			SKUCode:   row.SkuCode,
			SKUName:   row.SkuName,
			Reference: row.Reference,
			Quantity:  int(row.Quantity),
			ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		}
	}
	return result, nil
}
