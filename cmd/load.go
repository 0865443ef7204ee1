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

var loadDataDir string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the generated CSV files into the relational store",
	Long: `Create the five-table schema (with primary and foreign keys) if
absent and upsert every CSV row into its table, parents before children.
Re-running the load is safe and never duplicates rows.

Requires the generator's output to exist; run "diligent generate" first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = loadDataDir
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

		color.Cyan("📥 Loading %s/ into %s store...", cfg.DataDir, cfg.Database.Provider)

		if err := loader.New(adapter, cfg.DataDir).Run(ctx); err != nil {
			return err
		}

		color.Green("✅ Load completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDataDir, "data-dir", "data", "Directory containing the generated CSV files")
}
