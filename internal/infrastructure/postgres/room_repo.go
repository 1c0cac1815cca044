package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/hotel-reservations/internal/infrastructure/catalog"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

type RoomRepo struct{ pool *pgxpool.Pool }

func NewRoomRepo(pool *pgxpool.Pool) *RoomRepo { return &RoomRepo{pool: pool} }

// List returns every room ordered by number.
func (r *RoomRepo) List(ctx context.Context) ([]catalog.Entry, error) {
	rows, err := r.pool.Query(ctx, `SELECT room_number, room_type, price_per_night_cents FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Entry, error) {
		var e catalog.Entry
		err := row.Scan(&e.Number, &e.Type, &e.PricePerNightCents)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan rooms: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("rooms table: %w", internaltypes.ErrNotFound)
	}
	return out, nil
}

// Upsert inserts or updates a single room.
func (r *RoomRepo) Upsert(ctx context.Context, e catalog.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rooms (room_number, room_type, price_per_night_cents) VALUES ($1,$2,$3)
		ON CONFLICT (room_number) DO UPDATE SET room_type=EXCLUDED.room_type, price_per_night_cents=EXCLUDED.price_per_night_cents
	`, e.Number, e.Type, e.PricePerNightCents)
	return err
}
