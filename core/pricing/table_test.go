package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipment-discount/core/types"
)

func TestDefaultTableLookup(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		size     types.Size
		provider types.Provider
		price    types.Cents
	}{
		{types.SizeSmall, types.ProviderLP, 150},
		{types.SizeSmall, types.ProviderMR, 200},
		{types.SizeMedium, types.ProviderLP, 490},
		{types.SizeMedium, types.ProviderMR, 300},
		{types.SizeLarge, types.ProviderLP, 690},
		{types.SizeLarge, types.ProviderMR, 400},
	}
	for _, tt := range tests {
		price, ok := table.Lookup(tt.size, tt.provider)
		assert.True(t, ok, "%s %s", tt.size, tt.provider)
		assert.Equal(t, tt.price, price, "%s %s", tt.size, tt.provider)
	}
	assert.Equal(t, 6, table.Len())
}

func TestLookupUnknownCombination(t *testing.T) {
	table := DefaultTable()

	for _, tt := range []struct {
		size     types.Size
		provider types.Provider
	}{
		{"XL", types.ProviderLP},
		{types.SizeSmall, "UPS"},
		{"XL", "UPS"},
		{"", ""},
		{"s", "lp"},
	} {
		_, ok := table.Lookup(tt.size, tt.provider)
		assert.False(t, ok, "%q %q", tt.size, tt.provider)
	}
}

func TestLowestPrice(t *testing.T) {
	table := DefaultTable()

	lowest, ok := table.LowestPrice(types.SizeSmall)
	assert.True(t, ok)
	assert.Equal(t, types.Cents(150), lowest)

	lowest, ok = table.LowestPrice(types.SizeMedium)
	assert.True(t, ok)
	assert.Equal(t, types.Cents(300), lowest)

	_, ok = table.LowestPrice("XL")
	assert.False(t, ok)
}

func TestEntriesAreSorted(t *testing.T) {
	table := NewTable(
		Entry{Size: types.SizeSmall, Provider: types.ProviderMR, Price: 2},
		Entry{Size: types.SizeLarge, Provider: types.ProviderMR, Price: 4},
		Entry{Size: types.SizeLarge, Provider: types.ProviderLP, Price: 3},
		Entry{Size: types.SizeSmall, Provider: types.ProviderMR, Price: 1},
	)

	assert.Equal(t, []Entry{
		{Size: types.SizeLarge, Provider: types.ProviderLP, Price: 3},
		{Size: types.SizeLarge, Provider: types.ProviderMR, Price: 4},
		{Size: types.SizeSmall, Provider: types.ProviderMR, Price: 1},
	}, table.Entries())
	assert.Equal(t, []types.Size{types.SizeLarge, types.SizeSmall}, table.Sizes())
	assert.Equal(t, []types.Provider{types.ProviderLP, types.ProviderMR}, table.Providers(types.SizeLarge))
}
