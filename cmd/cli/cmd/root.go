// Package cmd provides the CLI commands for shipment-discount.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipment-discount/core/discount"
	"shipment-discount/core/pricing"
	"shipment-discount/core/types"
	"shipment-discount/internal/config"
	"shipment-discount/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipment-discount",
	Short: "Price shipments and apply monthly discount rules",
	Long: `shipment-discount prices shipment transactions and applies the
monthly discount rules in a fixed order:

  1. small shipments cost the lowest small shipment price of any provider
  2. one large LP shipment per calendar month is free
  3. total discounts per calendar month are capped

Run "shipment-discount rules" to see the prices and rule parameters in effect.

Examples:
  shipment-discount price input.txt
  shipment-discount price --format json - < input.txt
  shipment-discount rules`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("logging setup failed, keeping previous logger", zap.Error(err))
		return
	}
	logging.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("prices", cfg.Pricing.PriceFile),
		zap.Int("large_lp_threshold", cfg.Pricing.LargeLPThreshold),
		zap.Int64("monthly_discount_limit", cfg.Pricing.MonthlyDiscountLimit))
}

// loadTable returns the configured price table
func loadTable(cfg *config.Config) (*pricing.Table, error) {
	if cfg.Pricing.PriceFile == "" {
		return pricing.DefaultTable(), nil
	}
	return pricing.LoadTable(cfg.Pricing.PriceFile)
}

// chainOptions maps configuration onto rule parameters
func chainOptions(cfg *config.Config) discount.Options {
	return discount.Options{
		LargeLPThreshold:     cfg.Pricing.LargeLPThreshold,
		MonthlyDiscountLimit: types.Cents(cfg.Pricing.MonthlyDiscountLimit),
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shipment-discount version %s\n", Version)
	},
}
