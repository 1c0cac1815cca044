package usecases

import (
	"fmt"
	"time"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

// Confirmation is the content sent to a customer after a successful booking.
type Confirmation struct {
	ReservationID string
	CustomerName  string
	RoomNumber    int
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	TotalCents    int64
	BookedAt      time.Time
}

func NewConfirmation(r *reservation.Reservation) Confirmation {
	return Confirmation{
		ReservationID: r.ID().String(),
		CustomerName:  r.Customer().Name(),
		RoomNumber:    r.Room().Number(),
		RoomType:      r.Room().Type(),
		CheckIn:       r.CheckIn(),
		CheckOut:      r.CheckOut(),
		TotalCents:    r.TotalCents(),
		BookedAt:      r.BookedAt(),
	}
}

func (c Confirmation) Message() string {
	return fmt.Sprintf("Reservation confirmed for %s\n"+
		"Room: %d (%s)\n"+
		"Check-in: %s\n"+
		"Check-out: %s\n"+
		"Total: %s\n"+
		"Booking Time: %s\n"+
		"Reference: %s",
		c.CustomerName,
		c.RoomNumber, c.RoomType,
		c.CheckIn.Format(reservation.DateLayout),
		c.CheckOut.Format(reservation.DateLayout),
		reservation.FormatCents(c.TotalCents),
		c.BookedAt.Format("2006-01-02 15:04:05"),
		c.ReservationID,
	)
}
