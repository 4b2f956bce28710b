package repository

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CartQueries interface {
	ListCartItemsBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) ([]sqlc.ListCartItemsBySessionRow, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	DeleteCartItemsBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) ListItems(ctx context.Context, sessionID uuid.UUID) ([]cart.Item, error) {
	rows, err := r.queries.ListCartItemsBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	items := make([]cart.Item, 0, len(rows))
	for _, row := range rows {
		item, err := converter.CartItemFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert cart item", err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *CartRepository) Upsert(ctx context.Context, sessionID uuid.UUID, item cart.Item) error {
	err := r.queries.UpsertCartItem(ctx, r.db, sqlc.UpsertCartItemParams{
		SessionID: sessionID,
		SkuID:     item.SKUID,
		Quantity:  converter.Int32(item.Quantity),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, sessionID, skuID uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteCartItem(ctx, r.db, sqlc.DeleteCartItemParams{
		SessionID: sessionID,
		SkuID:     skuID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove cart item", err)
	}
	return affected > 0, nil
}

func (r *CartRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	affected, err := r.queries.DeleteCartItemsBySession(ctx, r.db, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete cart items", err)
	}
	return int(affected), nil
}
