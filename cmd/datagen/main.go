package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/medsupply/inventory-case-api/internal/datagen"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Generates synthetic inventory order records",
	Long: `datagen produces a randomized JSON dataset of hospital inventory orders
conforming to the schema the case-resolution API reads at startup. Records are
drawn from fixed item, vendor, and department catalogs with order dates inside
a configurable window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := datagen.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		gen := datagen.NewGenerator(cfg, logger)
		return gen.Run(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")

	rootCmd.Flags().Int("count", 100, "Number of order records to generate")
	rootCmd.Flags().String("output-file", "inventory_data.json", "Output file path")
	rootCmd.Flags().Int64("seed", 42, "Random seed for generation")
	rootCmd.Flags().String("start-date", "2024-10-31", "Base date of the order-date window (YYYY-MM-DD)")
	rootCmd.Flags().Int("window-days", 42, "Width of the order-date window in days")
	rootCmd.Flags().String("postgres-dsn", "", "Optionally import the generated records into Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
