package usecases

import (
	"context"
	"time"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

// ReservationConfirmed is emitted once a booking has been paid for and the
// customer notified.
type ReservationConfirmed struct {
	ReservationID      string `json:"reservation_id"`
	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	RoomNumber         int    `json:"room_number"`
	RoomType           string `json:"room_type"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	Nights             int    `json:"nights"`
	TotalAmountCents   int64  `json:"total_amount_cents"`
	PaymentMethod      string `json:"payment_method"`
	NotificationMethod string `json:"notification_method"`
	BookedAt           string `json:"booked_at"`
	ConfirmedAt        string `json:"confirmed_at"`
}

type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, ev ReservationConfirmed) error
}

func newReservationConfirmed(r *reservation.Reservation, pay reservation.PaymentMethod, notify reservation.NotificationMethod, confirmedAt time.Time) ReservationConfirmed {
	return ReservationConfirmed{
		ReservationID:      r.ID().String(),
		CustomerName:       r.Customer().Name(),
		CustomerEmail:      r.Customer().Email(),
		RoomNumber:         r.Room().Number(),
		RoomType:           r.Room().Type(),
		CheckIn:            r.CheckIn().Format(reservation.DateLayout),
		CheckOut:           r.CheckOut().Format(reservation.DateLayout),
		Nights:             r.Dates().Nights(),
		TotalAmountCents:   r.TotalCents(),
		PaymentMethod:      pay.Type(),
		NotificationMethod: notify.Type(),
		BookedAt:           r.BookedAt().UTC().Format(time.RFC3339),
		ConfirmedAt:        confirmedAt.UTC().Format(time.RFC3339),
	}
}
