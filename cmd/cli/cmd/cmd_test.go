package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-discount/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	original := config.Get()
	config.Set(config.Default())
	t.Cleanup(func() {
		config.Set(original)
		outputFormat, priceFile, showSummary = "", "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPriceCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("2015-02-01 S MR\n2015-02-29 CUSPS\n"), 0644))

	stdout, stderr, err := execute(t, "price", "--summary", path)
	require.NoError(t, err)
	assert.Equal(t, "2015-02-01 S MR 1.50 0.50\n2015-02-29 CUSPS Ignored\n", stdout)
	assert.Contains(t, stderr, "priced=1 ignored=1")
}

func TestPriceCommandWithPriceFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	prices := filepath.Join(dir, "prices.hcl")
	require.NoError(t, os.WriteFile(input, []byte("2015-02-01 S LP\n2015-02-01 M MR\n"), 0644))
	require.NoError(t, os.WriteFile(prices, []byte(`size "S" {
  LP = 180
  MR = 120
}
`), 0644))

	stdout, _, err := execute(t, "price", "--prices", prices, input)
	require.NoError(t, err)
	assert.Equal(t, "2015-02-01 S LP 1.20 0.60\n2015-02-01 M MR Ignored\n", stdout)
}

func TestPriceCommandMissingInput(t *testing.T) {
	_, stderr, err := execute(t, "price", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, stderr, "unavailable")
}

func TestRulesCommand(t *testing.T) {
	stdout, _, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Regexp(t, `L\s+LP\s+6\.90`, stdout)
	assert.Contains(t, stdout, "1. small-shipment-lowest-price")
	assert.Contains(t, stdout, "2. large-lp-free-shipment")
	assert.Contains(t, stdout, "3. monthly-discount-limit")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shipment-discount version "+Version+"\n", stdout)
}

func TestRootHelpPointsToRules(t *testing.T) {
	t.Cleanup(func() { _ = rootCmd.Flags().Set("help", "false") })

	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"shipment-discount rules"`)
	assert.NotContains(t, stdout, "10.00")
}
