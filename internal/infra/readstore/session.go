package readstore

import (
	"context"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"
)

type SessionViewQueries interface {
	GetSessionByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Session, error)
}

type SessionReadStore struct {
	queries SessionViewQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionViewQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SessionReadStore) FindByToken(ctx context.Context, token string) (*queries.SessionView, error) {
	row, err := r.queries.GetSessionByToken(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by token", err)
	}

	return &queries.SessionView{
		ID:        row.ID,
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
