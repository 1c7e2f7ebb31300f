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

// bcrypt hash of "password123", precomputed so tests skip the hashing cost
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (username) DO NOTHING",
		userID, username, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestSlot(t *testing.T, db DBLike, label string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO slots (id, label, status) VALUES ($1, $2, 'FREE') ON CONFLICT (label) DO NOTHING", slotID, label)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM slots WHERE label = $1", label).Scan(&slotID)
	}

	return slotID
}

func CreateTestVehicle(t *testing.T, db DBLike, plate string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO vehicles (id, plate, make, model, color, vehicle_type) VALUES ($1, $2, 'Toyota', 'Corolla', 'Silver', 'CAR') ON CONFLICT (plate) DO NOTHING",
		vehicleID, plate)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM vehicles WHERE plate = $1", plate).Scan(&vehicleID)
	}

	return vehicleID
}

// backdates the entry time of the plate's active session, so tariff scenarios
// can be exercised without waiting
func BackdateActiveSession(t *testing.T, db DBLike, plate string, by time.Duration) {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		UPDATE parking_sessions ps
		SET entered_at = entered_at - $2::interval
		FROM vehicles v
		WHERE ps.vehicle_id = v.id AND v.plate = $1 AND ps.status = 'ACTIVE'`,
		plate, fmt.Sprintf("%d seconds", int64(by.Seconds())))
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "no active session to backdate for plate %s", plate)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
