// Package pricing provides the static shipment price table.
// A table is built once at startup and is read-only afterwards,
// so it may be shared freely.
package pricing

import (
	"sort"

	"shipment-discount/core/types"
)

// Table maps size and provider to a base price
type Table struct {
	prices map[types.Size]map[types.Provider]types.Cents
}

// Entry is a single row of a price table
type Entry struct {
	Size     types.Size
	Provider types.Provider
	Price    types.Cents
}

// NewTable builds a table from entries. Later entries win on duplicates.
func NewTable(entries ...Entry) *Table {
	t := &Table{prices: make(map[types.Size]map[types.Provider]types.Cents)}
	for _, e := range entries {
		row, ok := t.prices[e.Size]
		if !ok {
			row = make(map[types.Provider]types.Cents)
			t.prices[e.Size] = row
		}
		row[e.Provider] = e.Price
	}
	return t
}

// DefaultTable returns the built-in price list
func DefaultTable() *Table {
	return NewTable(
		Entry{Size: types.SizeSmall, Provider: types.ProviderLP, Price: 150},
		Entry{Size: types.SizeSmall, Provider: types.ProviderMR, Price: 200},
		Entry{Size: types.SizeMedium, Provider: types.ProviderLP, Price: 490},
		Entry{Size: types.SizeMedium, Provider: types.ProviderMR, Price: 300},
		Entry{Size: types.SizeLarge, Provider: types.ProviderLP, Price: 690},
		Entry{Size: types.SizeLarge, Provider: types.ProviderMR, Price: 400},
	)
}

// Lookup returns the base price of a size/provider pair
func (t *Table) Lookup(size types.Size, provider types.Provider) (types.Cents, bool) {
	row, ok := t.prices[size]
	if !ok {
		return 0, false
	}
	price, ok := row[provider]
	return price, ok
}

// LowestPrice returns the cheapest price any provider offers for a size
func (t *Table) LowestPrice(size types.Size) (types.Cents, bool) {
	row, ok := t.prices[size]
	if !ok || len(row) == 0 {
		return 0, false
	}
	first := true
	var lowest types.Cents
	for _, price := range row {
		if first || price < lowest {
			lowest = price
			first = false
		}
	}
	return lowest, true
}

// Sizes returns the sizes in the table, sorted
func (t *Table) Sizes() []types.Size {
	sizes := make([]types.Size, 0, len(t.prices))
	for size := range t.prices {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}

// Providers returns the providers priced for a size, sorted
func (t *Table) Providers(size types.Size) []types.Provider {
	row := t.prices[size]
	providers := make([]types.Provider, 0, len(row))
	for provider := range row {
		providers = append(providers, provider)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}

// Entries returns every row, ordered by size then provider
func (t *Table) Entries() []Entry {
	var entries []Entry
	for _, size := range t.Sizes() {
		for _, provider := range t.Providers(size) {
			entries = append(entries, Entry{Size: size, Provider: provider, Price: t.prices[size][provider]})
		}
	}
	return entries
}

// Len returns the number of priced pairs
func (t *Table) Len() int {
	n := 0
	for _, row := range t.prices {
		n += len(row)
	}
	return n
}
