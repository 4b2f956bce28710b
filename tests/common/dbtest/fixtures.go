//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateSKU(t *testing.T, db DBLike, code, unitPrice string, quantity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO skus (id, code, name, unit_price, quantity) VALUES ($1, $2, $3, $4::numeric, $5)",
		id, code, "SKU "+code, unitPrice, quantity)
	require.NoError(t, err)
	return id
}

func Available(t *testing.T, db DBLike, skuID uuid.UUID) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(), "SELECT quantity FROM skus WHERE id = $1", skuID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func HeldQuantity(t *testing.T, db DBLike, skuID uuid.UUID) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(quantity), 0) FROM reservations WHERE sku_id = $1", skuID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireReservations moves every hold of the session into the past so the
// next sweep picks it up.
func ExpireReservations(t *testing.T, db DBLike, sessionToken string, at time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE reservations SET expires_at = $2
		WHERE session_id = (SELECT id FROM sessions WHERE token = $1)`,
		sessionToken, at)
	require.NoError(t, err)
}

func ExpireSession(t *testing.T, db DBLike, sessionToken string, at time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE sessions SET expires_at = $2 WHERE token = $1", sessionToken, at)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
