package reservation

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Reservation is a booking attempt for one room. Its total is fixed at
// creation; it starts unconfirmed and can only move to confirmed.
type Reservation struct {
	id         uuid.UUID
	customer   Customer
	room       *Room
	dates      DateRange
	bookedAt   time.Time
	totalCents int64

	confirmed atomic.Bool
}

// New builds an unconfirmed reservation. dates must already be valid.
func New(customer Customer, room *Room, dates DateRange, bookedAt time.Time) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		customer:   customer,
		room:       room,
		dates:      dates,
		bookedAt:   bookedAt,
		totalCents: int64(dates.Nights()) * room.PricePerNightCents(),
	}
}

func (r *Reservation) ID() uuid.UUID       { return r.id }
func (r *Reservation) Customer() Customer  { return r.customer }
func (r *Reservation) Room() *Room         { return r.room }
func (r *Reservation) Dates() DateRange    { return r.dates }
func (r *Reservation) CheckIn() time.Time  { return r.dates.Start }
func (r *Reservation) CheckOut() time.Time { return r.dates.End }
func (r *Reservation) BookedAt() time.Time { return r.bookedAt }
func (r *Reservation) TotalCents() int64   { return r.totalCents }
func (r *Reservation) Confirmed() bool     { return r.confirmed.Load() }

// Confirm marks the reservation confirmed. Calling it again is a no-op.
func (r *Reservation) Confirm() { r.confirmed.Store(true) }

func (r *Reservation) OverlapsWith(dates DateRange) bool {
	return Overlaps(r.dates, dates)
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation: %s | Room: %d | %s to %s | %s",
		r.customer.Name(), r.room.Number(),
		r.dates.Start.Format(DateLayout), r.dates.End.Format(DateLayout),
		FormatCents(r.totalCents))
}
