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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertBookingConfig stores a config row directly, bypassing the API.
func InsertBookingConfig(t *testing.T, db DBLike, merchantID uuid.UUID, automation string, seatsPerSlot int) {
	t.Helper()

	slots := fmt.Sprintf(`{"breakfast": %d, "lunch": %d, "dinner": %d}`, seatsPerSlot, seatsPerSlot, seatsPerSlot)
	_, err := db.Exec(context.Background(), `
		INSERT INTO booking_configs (merchant_id, automation_level, slot_capacity, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (merchant_id) DO UPDATE
		SET automation_level = EXCLUDED.automation_level, slot_capacity = EXCLUDED.slot_capacity`,
		merchantID, automation, slots)
	require.NoError(t, err)
}

func CountDecisions(t *testing.T, db DBLike, requestID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM booking_decisions WHERE request_id = $1", requestID).Scan(&n)
	require.NoError(t, err)
	return n
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) (status string, version int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, version FROM booking_requests WHERE id = $1", requestID).Scan(&status, &version)
	require.NoError(t, err)
	return status, version
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
