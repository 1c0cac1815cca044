package reservation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/example/hotel-reservations/internal/internaltypes"
)

// Room is a catalog entry plus the reservations attached to it. Only
// confirmed reservations take part in availability checks.
type Room struct {
	number     int
	roomType   string
	priceCents int64

	mu           sync.RWMutex
	reservations []*Reservation
}

func NewRoom(number int, roomType string, pricePerNightCents int64) (*Room, error) {
	roomType = strings.TrimSpace(roomType)
	if number <= 0 {
		return nil, fmt.Errorf("%w: number must be positive (got %d)", internaltypes.ErrInvalidRoom, number)
	}
	if roomType == "" {
		return nil, fmt.Errorf("%w: room %d has no type", internaltypes.ErrInvalidRoom, number)
	}
	if pricePerNightCents < 0 {
		return nil, fmt.Errorf("%w: room %d has a negative price", internaltypes.ErrInvalidRoom, number)
	}
	return &Room{number: number, roomType: roomType, priceCents: pricePerNightCents}, nil
}

func (r *Room) Number() int               { return r.number }
func (r *Room) Type() string              { return r.roomType }
func (r *Room) PricePerNightCents() int64 { return r.priceCents }

// IsAvailable reports whether no confirmed reservation overlaps dates.
func (r *Room) IsAvailable(dates DateRange) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.reservations {
		if res.Confirmed() && res.OverlapsWith(dates) {
			return false
		}
	}
	return true
}

// Attach appends res without re-checking overlap; callers check
// availability first and Detach on failure.
func (r *Room) Attach(res *Reservation) {
	r.mu.Lock()
	r.reservations = append(r.reservations, res)
	r.mu.Unlock()
}

// Detach removes res. Missing reservations are ignored.
func (r *Room) Detach(res *Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.reservations {
		if cur == res {
			r.reservations = append(r.reservations[:i:i], r.reservations[i+1:]...)
			return
		}
	}
}

// Reservations returns a copy of the attached reservations in attach order.
func (r *Room) Reservations() []*Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

func (r *Room) ConfirmedReservations() []*Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Reservation
	for _, res := range r.reservations {
		if res.Confirmed() {
			out = append(out, res)
		}
	}
	return out
}
