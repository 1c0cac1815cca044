package cli

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/infrastructure/voucher"
)

func newVoucherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voucher",
		Short: "Work with booking vouchers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify CODE",
		Short: "Check a voucher and print what it covers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.VouchersEnabled() {
				return fmt.Errorf("VOUCHER_HASH_KEY and VOUCHER_BLOCK_KEY are required")
			}
			v, err := voucher.NewSigner(cfg.VoucherHashKey, cfg.VoucherBlockKey).Verify(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Voucher is valid")
			fmt.Fprintf(out, "   Reference: %s\n", v.ReservationID)
			fmt.Fprintf(out, "   Customer: %s\n", v.CustomerName)
			fmt.Fprintf(out, "   Room: %d\n", v.RoomNumber)
			fmt.Fprintf(out, "   Stay: %s to %s\n", v.CheckIn, v.CheckOut)
			fmt.Fprintf(out, "   Total: %s\n", reservation.FormatCents(v.TotalCents))
			return nil
		},
	})
	return cmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Generate VOUCHER_HASH_KEY and VOUCHER_BLOCK_KEY values (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := securecookie.GenerateRandomKey(32)
			block := securecookie.GenerateRandomKey(32)
			if hash == nil || block == nil {
				return fmt.Errorf("generate keys: random source unavailable")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "export VOUCHER_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(hash))
			fmt.Fprintf(cmd.OutOrStdout(), "export VOUCHER_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(block))
			return nil
		},
	}
}
