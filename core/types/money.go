// Package types - Money types
package types

import "github.com/shopspring/decimal"

// Cents is an amount in minor currency units
type Cents int64

// Decimal converts the amount to major units
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String renders the amount with exactly two decimals
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Quote is a (price, discount) pair flowing through the discount chain
type Quote struct {
	Price    Cents `json:"price"`
	Discount Cents `json:"discount"`
}

// Total is the value the quote carries; rules may move value between
// price and discount but never change the total.
func (q Quote) Total() Cents {
	return q.Price + q.Discount
}

// Result is the outcome of pricing one shipment
type Result struct {
	Shipment Shipment `json:"-"`

	// Quote is the final price and discount
	Quote Quote `json:"quote"`

	// Base is the undiscounted table price
	Base Cents `json:"base"`

	// Priceable is false when the size/provider pair is not in the table
	Priceable bool `json:"priceable"`
}

// NotPriceable returns the result for an unknown size/provider pair
func NotPriceable(s Shipment) Result {
	return Result{Shipment: s}
}
