package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/hotel-reservations/internal/infrastructure/catalog"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rooms (
	room_number INTEGER PRIMARY KEY CHECK (room_number > 0),
	room_type TEXT NOT NULL,
	price_per_night_cents BIGINT NOT NULL CHECK (price_per_night_cents >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the rooms table and seeds it with entries. Existing rooms
// are left untouched.
func Migrate(ctx context.Context, pool *pgxpool.Pool, seed []catalog.Entry) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if len(seed) == 0 {
		return nil
	}
	sql, args := seedSQL(seed)
	if _, err := pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	return nil
}

func seedSQL(seed []catalog.Entry) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT INTO rooms (room_number, room_type, price_per_night_cents) VALUES `)
	args := make([]any, 0, len(seed)*3)
	for i, e := range seed {
		if i > 0 {
			b.WriteString(",")
		}
		n := i * 3
		fmt.Fprintf(&b, "($%d,$%d,$%d)", n+1, n+2, n+3)
		args = append(args, e.Number, e.Type, e.PricePerNightCents)
	}
	b.WriteString(` ON CONFLICT (room_number) DO NOTHING`)
	return b.String(), args
}
