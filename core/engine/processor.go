package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shipment-discount/core/input"
	"shipment-discount/core/output"
	"shipment-discount/internal/errors"
)

// Stats summarizes a run
type Stats struct {
	Lines         int             `json:"lines"`
	Priced        int             `json:"priced"`
	Ignored       int             `json:"ignored"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	TotalDiscount decimal.Decimal `json:"total_discount"`

	// IgnoredByType counts rejections per error type
	IgnoredByType map[errors.Type]int `json:"ignored_by_type,omitempty"`
}

func newStats() Stats {
	return Stats{
		TotalPrice:    decimal.Zero,
		TotalDiscount: decimal.Zero,
		IgnoredByType: make(map[errors.Type]int),
	}
}

// String renders a one-line summary
func (s Stats) String() string {
	return fmt.Sprintf("lines=%d priced=%d ignored=%d total_price=%s total_discount=%s",
		s.Lines, s.Priced, s.Ignored, s.TotalPrice.StringFixed(2), s.TotalDiscount.StringFixed(2))
}

// Processor streams records through a pricer into a formatter
type Processor struct {
	pricer    *Pricer
	formatter output.Formatter
	logger    *zap.Logger
}

// NewProcessor creates a processor
func NewProcessor(pricer *Pricer, formatter output.Formatter, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{pricer: pricer, formatter: formatter, logger: logger}
}

// Process prices every record of r in order and writes one line per record
// to w. Bad records are written as ignored and never stop the run; only
// read errors, write errors and cancellation do.
func (p *Processor) Process(ctx context.Context, r io.Reader, source string, w io.Writer) (Stats, error) {
	stats := newStats()
	scanner := input.NewScanner(r, source)

	for scanner.Next() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line := p.priceRecord(scanner.Record())
		stats.Lines++
		if line.Ignored {
			stats.Ignored++
			stats.IgnoredByType[errors.TypeOf(line.Reason)]++
			p.logger.Debug("record ignored",
				zap.Int("line", line.Record.Number),
				zap.String("raw", line.Record.Line),
				zap.Error(line.Reason))
		} else {
			stats.Priced++
			stats.TotalPrice = stats.TotalPrice.Add(line.Result.Quote.Price.Decimal())
			stats.TotalDiscount = stats.TotalDiscount.Add(line.Result.Quote.Discount.Decimal())
		}

		if err := p.formatter.Write(w, line); err != nil {
			return stats, errors.Internal("failed to write output", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, err
	}

	p.logger.Info("run complete",
		zap.Int("lines", stats.Lines),
		zap.Int("priced", stats.Priced),
		zap.Int("ignored", stats.Ignored))
	return stats, nil
}

func (p *Processor) priceRecord(rec input.Record) output.Line {
	if rec.Err != nil {
		return output.Line{Record: rec, Ignored: true, Reason: rec.Err}
	}

	result := p.pricer.Price(rec.Shipment)
	if !result.Priceable {
		return output.Line{
			Record:  rec,
			Ignored: true,
			Reason:  errors.NotPriceable(rec.Shipment.Size.String(), rec.Shipment.Provider.String()),
		}
	}
	return output.Line{Record: rec, Result: result}
}
