package converter

import (
	"storefront/internal/domain/cart"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func SessionToInfra(s *cart.Session) sqlc.CreateSessionParams {
	return sqlc.CreateSessionParams{
		ID:        s.ID(),
		Token:     s.Token(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
		ExpiresAt: pgconv.TimeToPgtype(s.ExpiresAt()),
	}
}

func SessionFromInfra(row sqlc.Session) *cart.Session {
	return cart.ReconstructSession(
		row.ID,
		row.Token,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
	)
}

func CartItemFromInfra(row sqlc.ListCartItemsBySessionRow) (cart.Item, error) {
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return cart.Item{}, err
	}
	return cart.Item{
		SKUID:     row.SkuID,
		SKUCode:   row.SkuCode,
		SKUName:   row.SkuName,
		UnitPrice: price,
		Quantity:  int(row.Quantity),
	}, nil
}
