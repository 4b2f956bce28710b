package readstore

import (
	"context"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	ListCartItemsBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) ([]sqlc.ListCartItemsBySessionRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListItems(ctx context.Context, sessionID uuid.UUID) ([]*queries.CartItemView, error) {
	rows, err := r.queries.ListCartItemsBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	result := make([]*queries.CartItemView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid unit price", err, infra.KindDBFailure)
		}
		result = append(result, &queries.CartItemView{
			SKUID:     row.SkuID,
			SKUCode:   row.SkuCode,
			SKUName:   row.SkuName,
			UnitPrice: price,
			Quantity:  int(row.Quantity),
		})
	}
	return result, nil
}
