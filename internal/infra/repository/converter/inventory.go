package converter

import (
	"storefront/internal/domain/inventory"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SkuRow struct {
	ID        uuid.UUID
	Code      string
	Name      string
	UnitPrice pgtype.Numeric
	Quantity  int32
	UpdatedAt pgtype.Timestamptz
}

func SKUFromInfra(row SkuRow) (*inventory.SKU, error) {
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructSKU(
		row.ID,
		row.Code,
		row.Name,
		price,
		int(row.Quantity),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
