package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Vishalbharadwaj27/Diligent/internal/config"
	"github.com/Vishalbharadwaj27/Diligent/internal/database"
	"github.com/Vishalbharadwaj27/Diligent/internal/loader"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-table row counts in the relational store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := database.Connect(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		color.Cyan("📊 Store contents (%s):", cfg.Database.Provider)
		for _, table := range loader.TableNames() {
			count, err := adapter.CountRows(ctx, table)
			if err != nil {
				color.Yellow("  %-10s (not loaded)", table)
				continue
			}
			fmt.Printf("  %-10s %d rows\n", table, count)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
