package commands

import (
	"context"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionResult struct {
	Token     string
	ExpiresAt time.Time
}

// CartCommands is the thin cart/session provider that feeds the reconciler.
type CartCommands interface {
	StartSession(ctx context.Context) (*SessionResult, error)
	SetItem(ctx context.Context, sessionToken string, skuID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, sessionToken string, skuID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	sessionTTL time.Duration
}

func NewCartUseCase(uow shared.UnitOfWork, clk clock.Clock, sessionTTL time.Duration) CartCommands {
	return &cartUseCaseImpl{
		uow:        uow,
		clock:      clk,
		sessionTTL: sessionTTL,
	}
}

func (c *cartUseCaseImpl) StartSession(ctx context.Context) (*SessionResult, error) {
	session, err := cart.NewSession(c.clock, c.sessionTTL)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, session)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &SessionResult{Token: session.Token(), ExpiresAt: session.ExpiresAt()}, nil
}

// SetItem sets the desired quantity of one SKU. Stock is not touched until
// checkout.
func (c *cartUseCaseImpl) SetItem(ctx context.Context, sessionToken string, skuID uuid.UUID, quantity int) error {
	item, err := cart.NewItem(skuID, quantity)
	if err != nil {
		return errs.Mark(err, ErrInvalidQuantity)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := findLiveSession(ctx, tx, c.clock.Now(), sessionToken)
		if err != nil {
			return err
		}

		if _, err := tx.Inventory().FindByID(ctx, skuID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSKUNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Cart().Upsert(ctx, session.ID(), item); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrSKUNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartUseCaseImpl) RemoveItem(ctx context.Context, sessionToken string, skuID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := findLiveSession(ctx, tx, c.clock.Now(), sessionToken)
		if err != nil {
			return err
		}

		removed, err := tx.Cart().Remove(ctx, session.ID(), skuID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !removed {
			return ErrCartItemNotFound
		}
		return nil
	})
}
