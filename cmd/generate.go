package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Vishalbharadwaj27/Diligent/internal/config"
	"github.com/Vishalbharadwaj27/Diligent/internal/dataset"
)

var (
	genCustomers int
	genProducts  int
	genOrders    int
	genSeed      int64
	genOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the e-commerce CSV dataset",
	Long: `Generate five internally-consistent CSV files (customers, products,
orders, payments, shipments) into the output directory, overwriting any
previous run. All randomness derives from the configured seed, so the
same seed and counts reproduce identical files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if cmd.Flags().Changed("customers") {
			cfg.Counts.Customers = genCustomers
		}
		if cmd.Flags().Changed("products") {
			cfg.Counts.Products = genProducts
		}
		if cmd.Flags().Changed("orders") {
			cfg.Counts.Orders = genOrders
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = genSeed
		}
		if cmd.Flags().Changed("out") {
			cfg.DataDir = genOut
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		color.Cyan("🌱 Generating dataset (seed %d)...", seed)

		gen := dataset.NewGenerator(seed)
		ds, err := gen.Generate(cfg.Counts.Customers, cfg.Counts.Products, cfg.Counts.Orders)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if err := dataset.WriteCSV(ds, cfg.DataDir); err != nil {
			return fmt.Errorf("failed to write CSV files: %w", err)
		}

		color.Green("✅ Wrote %d customers, %d products, %d orders, %d payments, %d shipments to %s/",
			len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.Payments), len(ds.Shipments), cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genCustomers, "customers", 250, "Number of customers to generate")
	generateCmd.Flags().IntVar(&genProducts, "products", 300, "Number of products to generate")
	generateCmd.Flags().IntVar(&genOrders, "orders", 500, "Number of orders to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Random seed (0 derives one from the current time)")
	generateCmd.Flags().StringVar(&genOut, "out", "data", "Output directory for CSV files")
}
