package repository

import (
	"context"

	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderQueries interface {
	InsertPaymentIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentIfAbsentParams) (uuid.UUID, error)
	GetPaymentByReference(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByReferenceParams) (sqlc.GetPaymentByReferenceRow, error)
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderLine(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderLineParams) error
}

type OrderRepository struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// InsertPaymentIfAbsent relies on ON CONFLICT DO NOTHING: a conflicting row
// returns no id.
func (r *OrderRepository) InsertPaymentIfAbsent(ctx context.Context, rec *payment.Record) (bool, error) {
	_, err := r.queries.InsertPaymentIfAbsent(ctx, r.db, converter.PaymentToInfra(rec))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert payment", err)
	}
	return true, nil
}

func (r *OrderRepository) FindPayment(ctx context.Context, email string, ref reservation.Reference) (*payment.Record, error) {
	row, err := r.queries.GetPaymentByReference(ctx, r.db, sqlc.GetPaymentByReferenceParams{
		CustomerEmail: email,
		Reference:     ref.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	rec, err := converter.PaymentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment", err, infra.KindDBFailure)
	}
	return rec, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *payment.Order) error {
	err := r.queries.CreateOrder(ctx, r.db, sqlc.CreateOrderParams{
		ID:            order.ID,
		PaymentID:     order.PaymentID,
		CustomerEmail: order.CustomerEmail,
		CreatedAt:     pgconv.TimeToPgtype(order.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, line := range order.Lines {
		err := r.queries.CreateOrderLine(ctx, r.db, sqlc.CreateOrderLineParams{
			OrderID:  order.ID,
			SkuID:    line.SKUID,
			Quantity: converter.Int32(line.Quantity),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order line", err)
		}
	}
	return nil
}
