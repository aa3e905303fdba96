package discount

import (
	"fmt"

	"shipment-discount/core/pricing"
	"shipment-discount/core/types"
)

// Chain applies rules in order. Each rule sees the quote produced by
// the rules before it and nothing from the rules after it.
type Chain struct {
	rules []Rule
}

// NewChain creates a chain over an explicit rule order
func NewChain(rules ...Rule) *Chain {
	return &Chain{rules: append([]Rule(nil), rules...)}
}

// Options parameterize the default chain
type Options struct {
	LargeLPThreshold     int
	MonthlyDiscountLimit types.Cents
}

// DefaultOptions returns the standard rule parameters
func DefaultOptions() Options {
	return Options{
		LargeLPThreshold:     DefaultLargeLPThreshold,
		MonthlyDiscountLimit: DefaultMonthlyDiscountLimit,
	}
}

// DefaultChain builds the standard rule order: small shipment price
// match, then the free large LP shipment, then the monthly cap.
// The cap must stay last or it would limit discounts it never saw.
func DefaultChain(table *pricing.Table, opts Options) *Chain {
	return NewChain(
		NewSmallShipmentDiscount(table),
		NewThirdLargeLPShipmentDiscount(opts.LargeLPThreshold),
		NewMonthlyDiscountLimit(opts.MonthlyDiscountLimit),
	)
}

// Rules returns the rules in application order
func (c *Chain) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Len returns the number of rules
func (c *Chain) Len() int {
	return len(c.rules)
}

// Apply folds the chain over a quote.
// It panics if any rule changes price+discount: that is a bug in the
// rule, never a property of the input.
func (c *Chain) Apply(q types.Quote, s types.Shipment) types.Quote {
	for _, rule := range c.rules {
		next := rule.Apply(q, s)
		assertConserved(rule, q, next)
		q = next
	}
	return q
}

func assertConserved(rule Rule, in, out types.Quote) {
	if in.Total() != out.Total() {
		panic(fmt.Sprintf("INVARIANT VIOLATED: rule %s changed quote total from %d to %d (in=%+v out=%+v)",
			rule.Name(), in.Total(), out.Total(), in, out))
	}
	if out.Price < 0 || out.Discount < 0 {
		panic(fmt.Sprintf("INVARIANT VIOLATED: rule %s produced negative amounts %+v", rule.Name(), out))
	}
}
