package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

func newRoomsCmd() *cobra.Command {
	var checkIn, checkOut string
	c := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms, with availability when dates are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if checkIn == "" && checkOut == "" {
				renderRooms(a.out, a.svc.Rooms())
				return nil
			}
			in, err := reservation.ParseDate(checkIn)
			if err != nil {
				return err
			}
			out, err := reservation.ParseDate(checkOut)
			if err != nil {
				return err
			}
			rows, err := a.svc.ListAvailability(in, out)
			if err != nil {
				return err
			}
			renderAvailability(a.out, reservation.NewDateRange(in, out), rows)
			return nil
		},
	}
	c.Flags().StringVar(&checkIn, "check-in", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&checkOut, "check-out", "", "check-out date YYYY-MM-DD")
	c.MarkFlagsRequiredTogether("check-in", "check-out")
	return c
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List payment and notification methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			renderStrategies(a.out, "Payment methods", a.payments.All())
			renderStrategies(a.out, "Notification methods", a.notifications.All())
			return nil
		},
	}
}
