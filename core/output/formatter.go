// Package output renders priced shipments.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"shipment-discount/core/input"
	"shipment-discount/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatText is the line format `<date> <size> <provider> <price> <discount>`
	FormatText Format = "text"

	// FormatJSON is one JSON object per line
	FormatJSON Format = "json"
)

// IgnoredSuffix is appended to rejected lines
const IgnoredSuffix = " Ignored"

// NoDiscount is printed in place of a zero discount
const NoDiscount = "-"

// Line is the outcome of one input record
type Line struct {
	// Record is the parsed input
	Record input.Record

	// Result is the pricing outcome; only meaningful when Ignored is false
	Result types.Result

	// Ignored marks records that were rejected
	Ignored bool

	// Reason explains a rejection
	Reason error
}

// Formatter writes lines in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Write renders one line
	Write(w io.Writer, line Line) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatText, "":
		return TextFormatter{}, nil
	case FormatJSON:
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextFormatter writes the plain line format
type TextFormatter struct{}

// Format implements Formatter
func (TextFormatter) Format() Format { return FormatText }

// Write implements Formatter
func (TextFormatter) Write(w io.Writer, line Line) error {
	_, err := io.WriteString(w, FormatLine(line)+"\n")
	return err
}

// FormatLine renders a line without the trailing newline
func FormatLine(line Line) string {
	if line.Ignored {
		return line.Record.Line + IgnoredSuffix
	}
	s := line.Result.Shipment
	return fmt.Sprintf("%s %s %s %s %s",
		s.Date.Format(types.DateLayout), s.Size, s.Provider,
		line.Result.Quote.Price, FormatDiscount(line.Result.Quote.Discount))
}

// FormatDiscount renders a discount, using "-" for none
func FormatDiscount(d types.Cents) string {
	if d == 0 {
		return NoDiscount
	}
	return d.String()
}

// JSONFormatter writes one object per line
type JSONFormatter struct{}

type jsonLine struct {
	Line     int    `json:"line"`
	Date     string `json:"date,omitempty"`
	Size     string `json:"size,omitempty"`
	Provider string `json:"provider,omitempty"`
	Price    string `json:"price,omitempty"`
	Discount string `json:"discount,omitempty"`
	Ignored  bool   `json:"ignored,omitempty"`
	Raw      string `json:"raw,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Format implements Formatter
func (JSONFormatter) Format() Format { return FormatJSON }

// Write implements Formatter
func (JSONFormatter) Write(w io.Writer, line Line) error {
	out := jsonLine{Line: line.Record.Number}
	if line.Ignored {
		out.Ignored = true
		out.Raw = line.Record.Line
		if line.Reason != nil {
			out.Reason = line.Reason.Error()
		}
	} else {
		s := line.Result.Shipment
		out.Date = s.Date.Format(types.DateLayout)
		out.Size = s.Size.String()
		out.Provider = s.Provider.String()
		out.Price = line.Result.Quote.Price.String()
		out.Discount = line.Result.Quote.Discount.String()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
