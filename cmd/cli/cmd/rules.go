// Package cmd - rules command
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shipment-discount/core/discount"
	"shipment-discount/internal/config"
)

// rulesCmd prints the price table and the discount chain
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the price table and the discount rules in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if priceFile != "" {
			cfg.Pricing.PriceFile = priceFile
		}
		table, err := loadTable(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SIZE\tPROVIDER\tPRICE")
		for _, e := range table.Entries() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Size, e.Provider, e.Price)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		chain := discount.DefaultChain(table, chainOptions(cfg))
		for i, rule := range chain.Rules() {
			fmt.Fprintf(out, "%d. %s\n", i+1, discount.Describe(rule))
		}
		return nil
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&priceFile, "prices", "p", "", "HCL price table file")
}
