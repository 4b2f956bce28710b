//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"storefront/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		kinds []infra.RepositoryErrorKind
		want  infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kinds...)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindNotFound, "sku not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: sku not found", err.Error())
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
