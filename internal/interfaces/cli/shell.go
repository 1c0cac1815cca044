package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/domain/reservation"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive reservation desk; bookings last for the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return runShell(ctx, a, cmd.InOrStdin())
		},
	}
}

// prompter reads answers line by line. ok is false once input is exhausted.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *prompter) number(prompt string) (int, bool) {
	for {
		s, ok := p.line(prompt)
		if !ok {
			return 0, false
		}
		if s == "" {
			fmt.Fprintln(p.out, "Input cannot be empty!")
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number!")
			continue
		}
		return n, true
	}
}

// date returns ok=false on an empty answer or end of input.
func (p *prompter) date(prompt string) (time.Time, bool) {
	for {
		s, ok := p.line(prompt)
		if !ok || s == "" {
			return time.Time{}, false
		}
		d, err := reservation.ParseDate(s)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid date format! Use YYYY-MM-DD (e.g., 2024-12-01)")
			continue
		}
		return d, true
	}
}

// choose lists items and returns the picked one; out-of-range picks clamp
// to the nearest entry.
func choose[T reservation.Strategy](p *prompter, title string, items []T) (T, bool) {
	renderStrategies(p.out, title, items)
	n, ok := p.number(fmt.Sprintf("Select (1-%d): ", len(items)))
	if !ok {
		var zero T
		return zero, false
	}
	i := min(max(n-1, 0), len(items)-1)
	return items[i], true
}

func runShell(ctx context.Context, a *app, in io.Reader) error {
	sc := bufio.NewScanner(in)
	p := &prompter{in: sc, out: a.out}
	sep := strings.Repeat("=", 60)

	fmt.Fprintln(a.out, sep)
	fmt.Fprintln(a.out, "      Hotel Reservation System")
	fmt.Fprintln(a.out, sep)
	for {
		fmt.Fprintln(a.out, "\nMain Menu:")
		fmt.Fprintln(a.out, "1. Make Reservation")
		fmt.Fprintln(a.out, "2. View Available Rooms")
		fmt.Fprintln(a.out, "3. Exit")
		choice, ok := p.number("Enter your choice: ")
		if !ok {
			return sc.Err()
		}
		switch choice {
		case 1:
			if !shellReserve(ctx, a, p) {
				return sc.Err()
			}
		case 2:
			fmt.Fprintln(a.out, "\nAll Rooms:")
			renderRooms(a.out, a.svc.Rooms())
		case 3:
			fmt.Fprintln(a.out, "Thank you for using our system!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice! Please try again.")
		}
		fmt.Fprintf(a.out, "\n%s\n", sep)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// shellReserve walks through one booking. It returns false when input ran
// out mid-way.
func shellReserve(ctx context.Context, a *app, p *prompter) bool {
	fmt.Fprintln(a.out, "\nMake New Reservation")
	fmt.Fprintln(a.out, "\nCustomer Information:")
	var fields [3]string
	for i, prompt := range []string{"Enter customer name: ", "Enter customer email: ", "Enter customer phone number: "} {
		s, ok := p.line(prompt)
		if !ok {
			return false
		}
		if s == "" {
			fmt.Fprintln(a.out, "Customer creation cancelled.")
			return true
		}
		fields[i] = s
	}
	customer, err := reservation.NewCustomer(fields[0], fields[1], fields[2])
	if err != nil {
		fmt.Fprintln(a.out, "Customer creation cancelled.")
		return true
	}

	checkIn, ok := p.date("Enter check-in date (YYYY-MM-DD): ")
	if !ok {
		return true
	}
	checkOut, ok := p.date("Enter check-out date (YYYY-MM-DD): ")
	if !ok {
		return true
	}
	rows, err := a.svc.ListAvailability(checkIn, checkOut)
	if err != nil {
		renderRejection(a.out, err)
		return true
	}
	renderAvailability(a.out, reservation.NewDateRange(checkIn, checkOut), rows)

	roomNumber, ok := p.number("Select room number: ")
	if !ok {
		return false
	}
	pay, ok := choose(p, "\nSelect Payment Method", a.payments.All())
	if !ok {
		return false
	}
	notify, ok := choose(p, "\nSelect Notification Method", a.notifications.All())
	if !ok {
		return false
	}

	fmt.Fprintln(a.out, "\nProcessing reservation...")
	_, err = a.book(ctx, usecases.BookingRequest{
		Customer:     customer,
		RoomNumber:   roomNumber,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Payment:      pay,
		Notification: notify,
	})
	if err != nil && !usecases.IsRejection(err) {
		fmt.Fprintf(a.out, "Reservation failed: %v\n", err)
	}
	return true
}
