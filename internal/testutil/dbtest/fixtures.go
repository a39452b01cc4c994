//go:build e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rows seeded into every test database.
var (
	StorageUnitID = uuid.MustParse("5b0f7d3e-2a6c-4e5b-9a41-0c6f1d2e3a4b")
	LockerAddonID = uuid.MustParse("9d3c2b1a-8f7e-4d6c-b5a4-3e2f1a0b9c8d")
	// Priced at 20.00 per hour.
	LockerAddonPriceMinor int64 = 2000
	InactiveAddonID             = uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO storage_units_storageunit (id, title, city) VALUES ($1, 'MG Road Hub', 'Bengaluru')
		ON CONFLICT (id) DO NOTHING`, StorageUnitID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO storage_units_addon (id, name, base_price, description, is_active) VALUES
		    ($1, 'Locker', 20.00, 'Secure locker', TRUE),
		    ($2, 'Retired wrap', 5.00, 'No longer offered', FALSE)
		ON CONFLICT (id) DO NOTHING`, LockerAddonID, InactiveAddonID)
	return err
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates the tables written by the booking workflow.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		TRUNCATE storage_bookings_bookingaddon, storage_bookings_storagebooking,
		         users_userdocument, users_user RESTART IDENTITY CASCADE`)
	return err
}
