// Package cmd - price command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipment-discount/core/discount"
	"shipment-discount/core/engine"
	"shipment-discount/core/input"
	"shipment-discount/core/output"
	"shipment-discount/internal/config"
	"shipment-discount/internal/logging"
)

var (
	outputFormat string
	priceFile    string
	showSummary  bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price [file]",
	Short: "Price shipments and apply discounts",
	Long: `Read shipment records, one per line, and print each with its price
and discount.

A record is "<YYYY-MM-DD> <size> <provider>". Records that cannot be
parsed or priced are echoed with " Ignored". Use "-" to read stdin.

Examples:
  shipment-discount price
  shipment-discount price transactions.txt
  shipment-discount price --prices prices.hcl --summary input.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
	priceCmd.Flags().StringVarP(&priceFile, "prices", "p", "", "HCL price table file")
	priceCmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "print run totals to stderr")
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if priceFile != "" {
		cfg.Pricing.PriceFile = priceFile
	}
	if showSummary {
		cfg.Output.Summary = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := cfg.Input.DefaultFile
	if len(args) > 0 {
		path = args[0]
	}

	runID := uuid.NewString()
	logger := logging.ForRun(runID)
	startTime := time.Now()

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	formatter, err := output.New(output.Format(cfg.Output.Format))
	if err != nil {
		return err
	}

	src, err := input.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Info("starting run",
		zap.String("input", path),
		zap.Int("prices", table.Len()),
		zap.String("format", cfg.Output.Format))

	chain := discount.DefaultChain(table, chainOptions(cfg))
	pricer := engine.NewPricer(table, chain).WithLogger(logger)
	processor := engine.NewProcessor(pricer, formatter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := bufio.NewWriter(cmd.OutOrStdout())
	stats, err := processor.Process(ctx, src, path, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}

	if cfg.Output.Summary {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s duration=%s\n", stats, time.Since(startTime).Round(time.Millisecond))
	}
	return nil
}
