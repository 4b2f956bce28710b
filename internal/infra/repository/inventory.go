package repository

import (
	"context"

	"storefront/internal/domain/inventory"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	GetSkuByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSkuByIDRow, error)
	ListSkusByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ListSkusByIDsRow, error)
	DecrementSkuQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSkuQuantityParams) (int32, error)
	IncrementSkuQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementSkuQuantityParams) (int32, error)
}

// InventoryRepository mutates stock only through single UPDATE statements;
// the CHECK (quantity >= 0) constraint is the oversell guard.
type InventoryRepository struct {
	queries InventoryQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.SKU, error) {
	row, err := r.queries.GetSkuByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sku", err)
	}

	sku, err := converter.SKUFromInfra(converter.SkuRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert sku", err, infra.KindDBFailure)
	}
	return sku, nil
}

func (r *InventoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*inventory.SKU, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.queries.ListSkusByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list skus", err)
	}

	result := make([]*inventory.SKU, 0, len(rows))
	for _, row := range rows {
		sku, err := converter.SKUFromInfra(converter.SkuRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert sku", err, infra.KindDBFailure)
		}
		result = append(result, sku)
	}
	return result, nil
}

func (r *InventoryRepository) Decrement(ctx context.Context, id uuid.UUID, qty int) (int, error) {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return 0, err
	}

	remaining, err := r.queries.DecrementSkuQuantity(ctx, r.db, sqlc.DecrementSkuQuantityParams{
		Amount: converter.Int32(qty),
		ID:     id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement sku quantity", err)
	}
	return int(remaining), nil
}

func (r *InventoryRepository) Increment(ctx context.Context, id uuid.UUID, qty int) (int, error) {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return 0, err
	}

	total, err := r.queries.IncrementSkuQuantity(ctx, r.db, sqlc.IncrementSkuQuantityParams{
		Amount: converter.Int32(qty),
		ID:     id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment sku quantity", err)
	}
	return int(total), nil
}
