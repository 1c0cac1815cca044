package reservation

import (
	"testing"
	"time"

	"github.com/example/hotel-reservations/internal/internaltypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func mustRoom(t *testing.T, number int, kind string, cents int64) *Room {
	t.Helper()
	r, err := NewRoom(number, kind, cents)
	require.NoError(t, err)
	return r
}

func mustCustomer(t *testing.T, name string) Customer {
	t.Helper()
	c, err := NewCustomer(name, name+"@example.com", "+1-555-0100")
	require.NoError(t, err)
	return c
}

func TestNewRoom_Validation(t *testing.T) {
	_, err := NewRoom(0, "Standard", 100)
	assert.ErrorIs(t, err, internaltypes.ErrInvalidRoom)
	_, err = NewRoom(101, "  ", 100)
	assert.ErrorIs(t, err, internaltypes.ErrInvalidRoom)
	_, err = NewRoom(101, "Standard", -1)
	assert.ErrorIs(t, err, internaltypes.ErrInvalidRoom)

	r, err := NewRoom(101, "Luxury", 0)
	require.NoError(t, err)
	assert.Equal(t, 101, r.Number())
	assert.Equal(t, "Luxury", r.Type())
}

func TestRoom_IsAvailable_EmptyRoom(t *testing.T) {
	r := mustRoom(t, 101, "Luxury", 25000)
	assert.True(t, r.IsAvailable(rng(2024, 1, 1, 2024, 1, 5)))
}

func TestRoom_IsAvailable_IgnoresUnconfirmed(t *testing.T) {
	r := mustRoom(t, 101, "Luxury", 25000)
	res := New(mustCustomer(t, "ana"), r, rng(2024, 1, 1, 2024, 1, 5), bookedAt)
	r.Attach(res)

	assert.True(t, r.IsAvailable(rng(2024, 1, 2, 2024, 1, 3)))
	assert.Len(t, r.Reservations(), 1)
	assert.Empty(t, r.ConfirmedReservations())

	res.Confirm()
	assert.False(t, r.IsAvailable(rng(2024, 1, 2, 2024, 1, 3)))
	assert.True(t, r.IsAvailable(rng(2024, 1, 5, 2024, 1, 7)))
	assert.True(t, r.IsAvailable(rng(2023, 12, 28, 2024, 1, 1)))
}

func TestRoom_DisjointConfirmedReservations(t *testing.T) {
	r := mustRoom(t, 102, "Deluxe", 18000)
	for _, d := range []DateRange{rng(2024, 1, 1, 2024, 1, 3), rng(2024, 1, 10, 2024, 1, 12)} {
		res := New(mustCustomer(t, "guest"), r, d, bookedAt)
		res.Confirm()
		r.Attach(res)
	}
	assert.True(t, r.IsAvailable(rng(2024, 1, 3, 2024, 1, 10)), "gap between bookings")
	assert.False(t, r.IsAvailable(rng(2024, 1, 2, 2024, 1, 4)))
	assert.False(t, r.IsAvailable(rng(2024, 1, 11, 2024, 1, 15)))
}

func TestRoom_Detach(t *testing.T) {
	r := mustRoom(t, 103, "Standard", 12000)
	a := New(mustCustomer(t, "a"), r, rng(2024, 1, 1, 2024, 1, 2), bookedAt)
	b := New(mustCustomer(t, "b"), r, rng(2024, 1, 2, 2024, 1, 3), bookedAt)
	r.Attach(a)
	r.Attach(b)

	r.Detach(a)
	assert.Equal(t, []*Reservation{b}, r.Reservations())

	// detaching something not attached is a no-op
	r.Detach(a)
	assert.Equal(t, []*Reservation{b}, r.Reservations())
}

func TestRoom_ReservationsIsSnapshot(t *testing.T) {
	r := mustRoom(t, 103, "Standard", 12000)
	r.Attach(New(mustCustomer(t, "a"), r, rng(2024, 1, 1, 2024, 1, 2), bookedAt))

	snap := r.Reservations()
	snap[0] = nil
	snap = append(snap, nil)

	got := r.Reservations()
	require.Len(t, got, 1)
	assert.NotNil(t, got[0])
}
