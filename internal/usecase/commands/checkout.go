package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/inventory"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	resultOK              = "ok"
	resultOutOfStock      = "out_of_stock"
	resultSessionNotFound = "session_not_found"
	resultEmptyCart       = "empty_cart"
	resultError           = "error"
)

type CheckoutMetrics interface {
	ObserveCheckout(result string)
	ObserveAction(kind string)
}

type CheckoutResult struct {
	Reference reservation.Reference
	ExpiresAt time.Time
	Currency  string
	Quote     pricing.Quote
}

type CheckoutCommands interface {
	Reconcile(ctx context.Context, sessionToken string) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow        shared.UnitOfWork
	services   *reservation.Services
	rates      pricing.RatesProvider
	metrics    CheckoutMetrics
	holdWindow time.Duration
	currency   string
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	services *reservation.Services,
	rates pricing.RatesProvider,
	metrics CheckoutMetrics,
	holdWindow time.Duration,
	currency string,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:        uow,
		services:   services,
		rates:      rates,
		metrics:    metrics,
		holdWindow: holdWindow,
		currency:   currency,
	}
}

// Reconcile brings the session's reservations in line with its cart and
// reissues every hold under one fresh reference. Stock moves and ledger
// writes commit together or not at all.
func (c *checkoutUseCaseImpl) Reconcile(ctx context.Context, sessionToken string) (*CheckoutResult, error) {
	rates, err := c.rates.Rates(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rates")
	}

	var (
		result  *CheckoutResult
		applied []reservation.Action
		empty   bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, err := findLiveSession(ctx, tx, c.services.Clock.Now(), sessionToken)
		if err != nil {
			return err
		}

		items, err := tx.Cart().ListItems(ctx, session.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := tx.Reservations().ListBySessionForUpdate(ctx, session.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		actions, err := reservation.Plan(toDemands(items), existing)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.precheck(ctx, tx, actions); err != nil {
			return err
		}

		hold, err := c.services.IssueHold(c.holdWindow)
		if err != nil {
			return err
		}

		for _, a := range actions {
			if err := c.apply(ctx, tx, session.ID(), a, hold); err != nil {
				return err
			}
		}

		applied = actions
		empty = len(items) == 0
		result = &CheckoutResult{
			Reference: hold.Reference,
			ExpiresAt: hold.ExpiresAt,
			Currency:  c.currency,
			Quote:     pricing.Calculate(toPricingLines(items), rates),
		}
		return nil
	})
	if err != nil {
		c.metrics.ObserveCheckout(checkoutResultLabel(err))
		return nil, err
	}

	for _, a := range applied {
		c.metrics.ObserveAction(a.Kind.String())
	}

	// An emptied cart still commits the releases of its former holds.
	if empty {
		c.metrics.ObserveCheckout(resultEmptyCart)
		return nil, ErrEmptyCart
	}

	c.metrics.ObserveCheckout(resultOK)
	slog.DebugContext(ctx, "checkout reconciled",
		"reference", result.Reference.String(),
		"actions", len(applied),
		"total", result.Quote.Total.String())
	return result, nil
}

// precheck rejects the pass before any row is touched when a SKU visibly
// lacks stock. The CHECK constraint still decides races after this point.
func (c *checkoutUseCaseImpl) precheck(ctx context.Context, tx shared.Tx, actions []reservation.Action) error {
	ids := make([]uuid.UUID, 0, len(actions))
	for _, a := range actions {
		if a.TakesStock() {
			ids = append(ids, a.SKUID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	skus, err := tx.Inventory().FindByIDs(ctx, ids)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]*inventory.SKU, len(skus))
	for _, s := range skus {
		byID[s.ID()] = s
	}

	for _, a := range actions {
		if !a.TakesStock() {
			continue
		}
		sku, ok := byID[a.SKUID]
		if !ok {
			return errs.Wrapf(ErrSKUNotFound, "sku %s", a.SKUID)
		}
		if !sku.CanFulfil(a.Delta) {
			return &OutOfStockError{SKUID: a.SKUID, Requested: a.Delta, Available: sku.Available()}
		}
	}
	return nil
}

func (c *checkoutUseCaseImpl) apply(ctx context.Context, tx shared.Tx, sessionID uuid.UUID, a reservation.Action, hold reservation.Hold) error {
	switch a.Kind {
	case reservation.ActionReserve:
		if err := decrement(ctx, tx, a); err != nil {
			return err
		}
		r, err := reservation.NewReservation(sessionID, a.SKUID, a.Desired, hold)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

	case reservation.ActionGrow:
		if err := decrement(ctx, tx, a); err != nil {
			return err
		}
		return reissue(ctx, tx, a.Existing, a.Desired, hold)

	case reservation.ActionShrink:
		if _, err := tx.Inventory().Increment(ctx, a.SKUID, a.Delta); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return reissue(ctx, tx, a.Existing, a.Desired, hold)

	case reservation.ActionRefresh:
		return reissue(ctx, tx, a.Existing, a.Existing.Quantity(), hold)

	case reservation.ActionRelease:
		if _, err := tx.Inventory().Increment(ctx, a.SKUID, a.Delta); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Reservations().Delete(ctx, a.Existing.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func decrement(ctx context.Context, tx shared.Tx, a reservation.Action) error {
	if _, err := tx.Inventory().Decrement(ctx, a.SKUID, a.Delta); err != nil {
		if infra.IsKind(err, infra.KindCheckViolated) {
			// Lost a race after the pre-check. The aborted transaction
			// cannot re-read the row, so Available stays zero.
			return &OutOfStockError{SKUID: a.SKUID, Requested: a.Delta}
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func reissue(ctx context.Context, tx shared.Tx, r *reservation.Reservation, quantity int, hold reservation.Hold) error {
	if err := r.Reissue(quantity, hold); err != nil {
		return err
	}
	if err := tx.Reservations().UpdateHold(ctx, r); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func findLiveSession(ctx context.Context, tx shared.Tx, now time.Time, token string) (*cart.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	session, err := tx.Sessions().FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if session.IsExpired(now) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func toDemands(items []cart.Item) []reservation.Demand {
	demands := make([]reservation.Demand, len(items))
	for i, item := range items {
		demands[i] = reservation.Demand{SKUID: item.SKUID, Quantity: item.Quantity}
	}
	return demands
}

func toPricingLines(items []cart.Item) []pricing.Line {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
	}
	return lines
}

func checkoutResultLabel(err error) string {
	switch {
	case errs.Is(err, ErrOutOfStock):
		return resultOutOfStock
	case errs.Is(err, ErrSessionNotFound):
		return resultSessionNotFound
	case errs.Is(err, ErrEmptyCart):
		return resultEmptyCart
	default:
		return resultError
	}
}
