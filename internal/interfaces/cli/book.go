package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/domain/reservation"
)

func newBookCmd() *cobra.Command {
	var (
		name, email, phone string
		roomNumber         int
		checkIn, checkOut  string
		paymentType        string
		notifyType         string
	)

	c := &cobra.Command{
		Use:   "book",
		Short: "Make a single reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := reservation.NewCustomer(name, email, phone)
			if err != nil {
				return err
			}
			in, err := reservation.ParseDate(checkIn)
			if err != nil {
				return err
			}
			out, err := reservation.ParseDate(checkOut)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = a.book(ctx, usecases.BookingRequest{
				Customer:     customer,
				RoomNumber:   roomNumber,
				CheckIn:      in,
				CheckOut:     out,
				Payment:      a.paymentByType(paymentType),
				Notification: a.notificationByType(notifyType),
			})
			return err
		},
	}

	c.Flags().StringVar(&name, "name", "", "customer name")
	c.Flags().StringVar(&email, "email", "", "customer email")
	c.Flags().StringVar(&phone, "phone", "", "customer phone number")
	c.Flags().IntVar(&roomNumber, "room", 0, "room number")
	c.Flags().StringVar(&checkIn, "check-in", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&checkOut, "check-out", "", "check-out date YYYY-MM-DD")
	c.Flags().StringVar(&paymentType, "payment", "credit", "payment method type")
	c.Flags().StringVar(&notifyType, "notify", "email", "notification method type")

	for _, f := range []string{"name", "email", "phone", "room", "check-in", "check-out"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}
