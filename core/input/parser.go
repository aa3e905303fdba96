// Package input turns raw input lines into shipments.
package input

import (
	"strings"
	"time"

	"shipment-discount/core/types"
	"shipment-discount/internal/errors"
)

// Record is one line of input together with its parse outcome
type Record struct {
	// Number is the 1-based line number
	Number int

	// Line is the raw line with surrounding whitespace removed
	Line string

	// Shipment is set when Err is nil
	Shipment types.Shipment

	// Err is a MalformedRecord or UnparseableDate error
	Err error
}

// ParseLine parses `<YYYY-MM-DD> <size> <provider>`.
// Size and provider are taken as-is; priceability is decided by the price table.
func ParseLine(line string) (types.Shipment, error) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) != 3 {
		return types.Shipment{}, errors.MalformedRecord(trimmed, len(fields))
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return types.Shipment{}, err
	}
	return types.NewShipment(date, types.Size(fields[1]), types.Provider(fields[2])), nil
}

// ParseDate parses a calendar date token
func ParseDate(token string) (time.Time, error) {
	date, err := time.Parse(types.DateLayout, token)
	if err != nil {
		return time.Time{}, errors.UnparseableDate(token, err)
	}
	return date, nil
}

// NewRecord parses a numbered line
func NewRecord(number int, line string) Record {
	shipment, err := ParseLine(line)
	return Record{
		Number:   number,
		Line:     strings.TrimSpace(line),
		Shipment: shipment,
		Err:      err,
	}
}
