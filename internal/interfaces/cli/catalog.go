package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/infrastructure/catalog"
	"github.com/example/hotel-reservations/internal/infrastructure/postgres"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the room catalog stored in Postgres",
	}
	cmd.AddCommand(newCatalogMigrateCmd())
	cmd.AddCommand(newCatalogSetCmd())
	return cmd
}

func newCatalogMigrateCmd() *cobra.Command {
	var seed bool
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create the rooms table and seed the default rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()
			pool, err := postgres.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			var entries []catalog.Entry
			if seed {
				entries = catalog.Default()
			}
			if err := postgres.Migrate(ctx, pool, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog migrated (seeded %d rooms)\n", len(entries))
			return nil
		},
	}
	c.Flags().BoolVar(&seed, "seed", true, "insert the default rooms if missing")
	return c
}

func newCatalogSetCmd() *cobra.Command {
	var e catalog.Entry
	c := &cobra.Command{
		Use:   "set",
		Short: "Add or update a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.Build([]catalog.Entry{e}); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()
			pool, err := postgres.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.NewRoomRepo(pool).Upsert(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "room %d saved\n", e.Number)
			return nil
		},
	}
	c.Flags().IntVar(&e.Number, "room", 0, "room number")
	c.Flags().StringVar(&e.Type, "type", "", "room type, e.g. Deluxe")
	c.Flags().Int64Var(&e.PricePerNightCents, "price-cents", 0, "price per night in cents")
	_ = c.MarkFlagRequired("room")
	_ = c.MarkFlagRequired("type")
	_ = c.MarkFlagRequired("price-cents")
	return c
}
