package queries

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

type SessionViewRepo interface {
	FindByToken(ctx context.Context, token string) (*SessionView, error)
}

// resolveSession maps unknown and expired tokens to shared.ErrSessionNotFound.
func resolveSession(ctx context.Context, repo SessionViewRepo, clk clock.Clock, token string) (*SessionView, error) {
	if token == "" {
		return nil, shared.ErrSessionNotFound
	}

	session, err := repo.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve session")
	}

	if !clk.Now().Before(session.ExpiresAt) {
		return nil, shared.ErrSessionNotFound
	}
	return session, nil
}
