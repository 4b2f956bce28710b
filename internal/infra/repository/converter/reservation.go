package converter

import (
	"fmt"
	"math"

	"storefront/internal/domain/reservation"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		SessionID: res.SessionID(),
		SkuID:     res.SKUID(),
		Reference: res.Reference().String(),
		Quantity:  Int32(res.Quantity()),
		ExpiresAt: pgconv.TimeToPgtype(res.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationHoldToInfra(res *reservation.Reservation) sqlc.UpdateReservationHoldParams {
	return sqlc.UpdateReservationHoldParams{
		ID:        res.ID(),
		Quantity:  Int32(res.Quantity()),
		Reference: res.Reference().String(),
		ExpiresAt: pgconv.TimeToPgtype(res.ExpiresAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.SessionID,
		row.SkuID,
		reservation.Reference(row.Reference),
		int(row.Quantity),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// Int32 narrows a quantity for an INTEGER column. Quantities are validated
// upstream, so overflow is a programming error.
func Int32(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("quantity out of int32 range: %d", n))
	}
	return int32(n)
}
