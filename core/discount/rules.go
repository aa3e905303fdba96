package discount

import (
	"fmt"

	"shipment-discount/core/pricing"
	"shipment-discount/core/types"
)

// Default rule parameters
const (
	DefaultLargeLPThreshold     = 3
	DefaultMonthlyDiscountLimit = types.Cents(1000)
)

// SmallShipmentDiscount prices every small shipment at the lowest small
// shipment price among all providers.
type SmallShipmentDiscount struct {
	table *pricing.Table
}

// NewSmallShipmentDiscount creates the rule over a price table
func NewSmallShipmentDiscount(table *pricing.Table) *SmallShipmentDiscount {
	return &SmallShipmentDiscount{table: table}
}

// Name returns the rule name
func (r *SmallShipmentDiscount) Name() string {
	return "small-shipment-lowest-price"
}

// Describe returns a summary of the rule
func (r *SmallShipmentDiscount) Describe() string {
	lowest, ok := r.table.LowestPrice(types.SizeSmall)
	if !ok {
		return fmt.Sprintf("%s: no size %s prices, shipments pass through unchanged", r.Name(), types.SizeSmall)
	}
	return fmt.Sprintf("%s: size %s shipments cost %s regardless of provider", r.Name(), types.SizeSmall, lowest)
}

// Apply implements Rule
func (r *SmallShipmentDiscount) Apply(q types.Quote, s types.Shipment) types.Quote {
	if s.Size != types.SizeSmall {
		return q
	}
	lowest, ok := r.table.LowestPrice(types.SizeSmall)
	if !ok || q.Price <= lowest {
		return q
	}
	cut := q.Price - lowest
	return types.Quote{Price: lowest, Discount: q.Discount + cut}
}

// ThirdLargeLPShipmentDiscount makes the Nth large LP shipment of each
// calendar month free. Only the exact Nth shipment qualifies; the counter
// keeps growing past N, so later shipments in the same month pay in full.
type ThirdLargeLPShipmentDiscount struct {
	threshold int64
	counts    *monthlyCounter
}

// NewThirdLargeLPShipmentDiscount creates the rule. A threshold below 1
// falls back to the default.
func NewThirdLargeLPShipmentDiscount(threshold int) *ThirdLargeLPShipmentDiscount {
	if threshold < 1 {
		threshold = DefaultLargeLPThreshold
	}
	return &ThirdLargeLPShipmentDiscount{
		threshold: int64(threshold),
		counts:    newMonthlyCounter(),
	}
}

// Name returns the rule name
func (r *ThirdLargeLPShipmentDiscount) Name() string {
	return "large-lp-free-shipment"
}

// Describe returns a summary of the rule
func (r *ThirdLargeLPShipmentDiscount) Describe() string {
	return fmt.Sprintf("%s: shipment #%d of size %s via %s each month is free",
		r.Name(), r.threshold, types.SizeLarge, types.ProviderLP)
}

// Apply implements Rule
func (r *ThirdLargeLPShipmentDiscount) Apply(q types.Quote, s types.Shipment) types.Quote {
	if s.Size != types.SizeLarge || s.Provider != types.ProviderLP {
		return q
	}
	if r.counts.add(s.Month(), 1) != r.threshold {
		return q
	}
	// Overrides whatever earlier rules decided.
	return types.Quote{Price: 0, Discount: q.Total()}
}

// Count returns how many qualifying shipments were seen in a month
func (r *ThirdLargeLPShipmentDiscount) Count(month types.MonthKey) int64 {
	return r.counts.get(month)
}

// MonthlyDiscountLimit caps the discount granted per calendar month.
// Whatever part of a proposed discount exceeds the remaining allowance
// goes back onto the price. It has to be the last rule of a chain.
type MonthlyDiscountLimit struct {
	limit   types.Cents
	granted *monthlyCounter
}

// NewMonthlyDiscountLimit creates the rule. A negative limit falls back
// to the default.
func NewMonthlyDiscountLimit(limit types.Cents) *MonthlyDiscountLimit {
	if limit < 0 {
		limit = DefaultMonthlyDiscountLimit
	}
	return &MonthlyDiscountLimit{
		limit:   limit,
		granted: newMonthlyCounter(),
	}
}

// Name returns the rule name
func (r *MonthlyDiscountLimit) Name() string {
	return "monthly-discount-limit"
}

// Describe returns a summary of the rule
func (r *MonthlyDiscountLimit) Describe() string {
	return fmt.Sprintf("%s: at most %s of discounts per calendar month", r.Name(), r.limit)
}

// Apply implements Rule
func (r *MonthlyDiscountLimit) Apply(q types.Quote, s types.Shipment) types.Quote {
	month := s.Month()
	used := types.Cents(r.granted.get(month))
	if used >= r.limit {
		return types.Quote{Price: q.Total(), Discount: 0}
	}

	grant := q.Discount
	if remaining := r.limit - used; grant > remaining {
		grant = remaining
	}
	if grant < 0 {
		grant = 0
	}
	r.granted.add(month, int64(grant))
	return types.Quote{Price: q.Price + q.Discount - grant, Discount: grant}
}

// Granted returns the discount already granted in a month
func (r *MonthlyDiscountLimit) Granted(month types.MonthKey) types.Cents {
	return types.Cents(r.granted.get(month))
}

// Remaining returns the discount still available in a month
func (r *MonthlyDiscountLimit) Remaining(month types.MonthKey) types.Cents {
	if left := r.limit - r.Granted(month); left > 0 {
		return left
	}
	return 0
}
