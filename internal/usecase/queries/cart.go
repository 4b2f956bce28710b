package queries

import (
	"context"

	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartViewRepo interface {
	ListItems(ctx context.Context, sessionID uuid.UUID) ([]*CartItemView, error)
}

type CartQueries interface {
	Get(ctx context.Context, sessionToken string) (*CartView, error)
}

type cartQueriesImpl struct {
	sessions SessionViewRepo
	items    CartViewRepo
	rates    pricing.RatesProvider
	currency string
	clock    clock.Clock
}

func NewCartQueries(
	sessions SessionViewRepo,
	items CartViewRepo,
	rates pricing.RatesProvider,
	currency string,
	clk clock.Clock,
) CartQueries {
	return &cartQueriesImpl{
		sessions: sessions,
		items:    items,
		rates:    rates,
		currency: currency,
		clock:    clk,
	}
}

// Get prices the cart at current rates. The quote is indicative; checkout
// issues the binding one.
func (q *cartQueriesImpl) Get(ctx context.Context, sessionToken string) (*CartView, error) {
	session, err := resolveSession(ctx, q.sessions, q.clock, sessionToken)
	if err != nil {
		return nil, err
	}

	items, err := q.items.ListItems(ctx, session.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cart items")
	}

	rates, err := q.rates.Rates(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rates")
	}

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
	}

	return &CartView{
		Items:     items,
		Currency:  q.currency,
		Quote:     pricing.Calculate(lines, rates),
		ExpiresAt: session.ExpiresAt,
	}, nil
}
