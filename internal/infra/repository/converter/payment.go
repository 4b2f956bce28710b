package converter

import (
	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func PaymentToInfra(rec *payment.Record) sqlc.InsertPaymentIfAbsentParams {
	params := sqlc.InsertPaymentIfAbsentParams{
		ID:            rec.ID,
		Reference:     rec.Reference.String(),
		CustomerEmail: rec.CustomerEmail,
		Amount:        pgconv.DecimalToNumeric(rec.Amount),
		Currency:      rec.Currency,
	}
	if !rec.PaidAt.IsZero() {
		params.PaidAt = pgconv.TimeToPgtype(rec.PaidAt)
	}
	return params
}

func PaymentFromInfra(row sqlc.GetPaymentByReferenceRow) (*payment.Record, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return &payment.Record{
		ID:            row.ID,
		Reference:     reservation.Reference(row.Reference),
		CustomerEmail: row.CustomerEmail,
		Amount:        amount,
		Currency:      row.Currency,
		PaidAt:        pgconv.TimeFromPgtype(row.PaidAt),
	}, nil
}
