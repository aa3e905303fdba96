// Package main is the entry point for the shipment-discount CLI.
package main

import (
	"os"

	"shipment-discount/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
