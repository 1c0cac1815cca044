package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hotelres",
		Short:         "Hotel reservation desk: check availability, book rooms, verify vouchers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("env-file", ".env", "optional dotenv file loaded before the environment")

	cmd.AddCommand(newShellCmd())
	cmd.AddCommand(newBookCmd())
	cmd.AddCommand(newRoomsCmd())
	cmd.AddCommand(newMethodsCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newVoucherCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := NewRoot().ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hotelres %s (commit=%s, built=%s)\n", Version, CommitSHA, BuildDate)
		},
	}
}
