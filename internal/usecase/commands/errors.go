package commands

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOutOfStock              = errs.New("out of stock")
	ErrEmptyCart               = errs.New("cart is empty")
	ErrSKUNotFound             = errs.New("sku not found")
	ErrInvalidQuantity         = errs.New("invalid quantity")
	ErrCartItemNotFound        = errs.New("cart item not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	ErrSessionNotFound = shared.ErrSessionNotFound
)

// OutOfStockError names the SKU that could not be held. It matches
// ErrOutOfStock under errors.Is.
type OutOfStockError struct {
	SKUID     uuid.UUID
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: sku %s needs %d more, %d available", e.SKUID, e.Requested, e.Available)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}
