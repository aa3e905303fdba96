package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-discount/core/types"
	"shipment-discount/internal/errors"
)

const defaultPriceFile = `
size "S" {
  LP = 150
  MR = 200
}

size "M" {
  LP = 490
  MR = 300
}

size "L" {
  LP = 690
  MR = 400
}
`

func TestParseTableMatchesDefault(t *testing.T) {
	table, err := ParseTable([]byte(defaultPriceFile), "prices.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable().Entries(), table.Entries())
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
size "XL" {
  UPS = 1250
}
`), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)

	price, ok := table.Lookup("XL", "UPS")
	assert.True(t, ok)
	assert.Equal(t, types.Cents(1250), price)
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `size "S" { LP = }`},
		{name: "empty", src: ``},
		{name: "fraction", src: `size "S" { LP = 1.5 }`},
		{name: "negative", src: `size "S" { LP = -1 }`},
		{name: "string", src: `size "S" { LP = "cheap" }`},
		{name: "missing label", src: `size { LP = 1 }`},
		{name: "unknown block", src: `weight "S" { LP = 1 }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.src), "prices.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig), err.Error())
		})
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}
