// Package discount implements the ordered chain of shipment discount rules.
//
// A rule receives the running quote and may move value between price and
// discount. It must never create or destroy value: the chain checks
// price+discount after every rule and panics if a rule breaks it.
//
// Rules with monthly counters key their state by calendar month, so a new
// month starts from zero without any explicit reset.
package discount

import (
	"shipment-discount/core/types"
)

// Rule is a single step of the discount chain
type Rule interface {
	// Name identifies the rule in logs and listings
	Name() string

	// Apply returns the adjusted quote for a shipment
	Apply(q types.Quote, s types.Shipment) types.Quote
}

// Describer is implemented by rules that can explain themselves
type Describer interface {
	Describe() string
}

// Describe returns a human-readable summary of a rule
func Describe(r Rule) string {
	if d, ok := r.(Describer); ok {
		return d.Describe()
	}
	return r.Name()
}
