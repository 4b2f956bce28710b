package repository

import (
	"context"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionQueries interface {
	CreateSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionParams) error
	GetSessionByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Session, error)
	ListExpiredSessionIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredSessionIDsParams) ([]uuid.UUID, error)
	DeleteSession(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SessionRepository struct {
	queries SessionQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *cart.Session) error {
	if err := r.queries.CreateSession(ctx, r.db, converter.SessionToInfra(s)); err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*cart.Session, error) {
	row, err := r.queries.GetSessionByToken(ctx, r.db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return converter.SessionFromInfra(row), nil
}

func (r *SessionRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredSessionIDs(ctx, r.db, sqlc.ListExpiredSessionIDsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: converter.Int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired sessions", err)
	}
	return ids, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteSession(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "session not found")
	}
	return nil
}
