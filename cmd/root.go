package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.2"
)

var rootCmd = &cobra.Command{
	Use:   "diligent",
	Short: "Synthesize a relational e-commerce dataset and load it into a database",
	Long: `
Diligent generates a small, referentially-consistent e-commerce dataset
(customers, products, orders, payments, shipments) as CSV files, then
loads those files into a relational store with declared primary and
foreign keys.

Typical usage:
  diligent generate    # write CSV files into data/
  diligent load        # upsert them into the database (sqlite by default)
  diligent status      # show per-table row counts`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("diligent version %s\n", Version)
			os.Exit(0)
		}

		color.New(color.FgCyan, color.Bold).Println("diligent — e-commerce dataset toolkit")
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./diligent.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("diligent.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
