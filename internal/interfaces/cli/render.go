package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

func renderRejection(out io.Writer, err error) {
	var unavailable *usecases.RoomUnavailableError
	switch {
	case errors.As(err, &unavailable):
		fmt.Fprintf(out, "Room %d is not available for the selected dates\n", unavailable.RoomNumber)
		fmt.Fprintln(out, "   Existing reservations:")
		for _, r := range unavailable.Confirmed {
			fmt.Fprintf(out, "   - %s\n", r)
		}
	case errors.Is(err, internaltypes.ErrInvalidDateRange):
		fmt.Fprintln(out, "Invalid date range: check-out must be after check-in")
	case errors.Is(err, internaltypes.ErrRoomNotFound):
		fmt.Fprintf(out, "%s\n", capitalize(err.Error()))
	case errors.Is(err, internaltypes.ErrPaymentFailed):
		fmt.Fprintln(out, "Payment failed! The reservation was not made.")
	default:
		fmt.Fprintf(out, "Reservation rejected: %v\n", err)
	}
}

func renderReservation(out io.Writer, r *reservation.Reservation, pay reservation.PaymentMethod, notify reservation.NotificationMethod) {
	line := strings.Repeat("-", 40)
	fmt.Fprintln(out, "Reservation completed successfully!")
	fmt.Fprintln(out, "Reservation Details:")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "   Reference: %s\n", r.ID())
	fmt.Fprintf(out, "   Customer: %s\n", r.Customer().Name())
	fmt.Fprintf(out, "   Room: %d (%s)\n", r.Room().Number(), r.Room().Type())
	fmt.Fprintf(out, "   Check-in: %s\n", r.CheckIn().Format(reservation.DateLayout))
	fmt.Fprintf(out, "   Check-out: %s\n", r.CheckOut().Format(reservation.DateLayout))
	fmt.Fprintf(out, "   Total: %s\n", reservation.FormatCents(r.TotalCents()))
	fmt.Fprintf(out, "   Booking Time: %s\n", r.BookedAt().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "Payment Method: %s\n", pay.Name())
	fmt.Fprintf(out, "Notification: %s\n", notify.Name())
}

func renderRooms(out io.Writer, rooms []*reservation.Room) {
	fmt.Fprintln(out, "Room No | Type        | Price/night")
	fmt.Fprintln(out, strings.Repeat("-", 50))
	for _, r := range rooms {
		fmt.Fprintf(out, "%7d | %-11s | %11s\n", r.Number(), r.Type(), reservation.FormatCents(r.PricePerNightCents()))
	}
}

func renderAvailability(out io.Writer, dates reservation.DateRange, rows []usecases.RoomAvailability) {
	fmt.Fprintf(out, "Available Rooms for %s:\n", dates)
	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintln(out, "Room No | Type        | Price/night | Available")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, row := range rows {
		avail := "NO"
		if row.Available {
			avail = "YES"
		}
		fmt.Fprintf(out, "%7d | %-11s | %11s | %s\n",
			row.Room.Number(), row.Room.Type(), reservation.FormatCents(row.Room.PricePerNightCents()), avail)
	}
	fmt.Fprintln(out, strings.Repeat("-", 60))
}

func renderStrategies[T reservation.Strategy](out io.Writer, title string, items []T) {
	fmt.Fprintf(out, "%s:\n", title)
	for i, s := range items {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, s.Name(), s.Type())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
