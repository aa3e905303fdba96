// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"fmt"
	"time"
)

// Size is a parcel size token (S, M, L)
type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// String returns the string representation of the size
func (s Size) String() string {
	return string(s)
}

// Provider is a shipping provider token (LP, MR)
type Provider string

const (
	ProviderLP Provider = "LP"
	ProviderMR Provider = "MR"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// DateLayout is the input and output layout of shipment dates
const DateLayout = "2006-01-02"

// Shipment is a single parsed transaction.
// Size and Provider are not validated here; the price table decides
// whether a combination can be priced.
type Shipment struct {
	Date     time.Time
	Size     Size
	Provider Provider
}

// NewShipment creates a shipment with the date truncated to the calendar day
func NewShipment(date time.Time, size Size, provider Provider) Shipment {
	y, m, d := date.Date()
	return Shipment{
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Size:     size,
		Provider: provider,
	}
}

// Month returns the calendar month the shipment falls into
func (s Shipment) Month() MonthKey {
	return MonthOf(s.Date)
}

// String renders the shipment the way it appears in input
func (s Shipment) String() string {
	return fmt.Sprintf("%s %s %s", s.Date.Format(DateLayout), s.Size, s.Provider)
}

// MonthKey identifies a calendar month
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf derives the month key of a date
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before reports whether k is an earlier calendar month than other
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// IsZero reports whether the key was never set
func (k MonthKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0
}

// String renders the key as YYYY-MM
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}
