// Package engine prices shipment streams.
// CLI is a thin wrapper around this engine.
package engine

import (
	"go.uber.org/zap"

	"shipment-discount/core/discount"
	"shipment-discount/core/pricing"
	"shipment-discount/core/types"
	"shipment-discount/internal/logging"
)

// Pricer prices single shipments: table lookup, then the discount chain.
// A Pricer owns mutable rule state and must not be shared between goroutines.
type Pricer struct {
	table   *pricing.Table
	chain   *discount.Chain
	tracker *discount.MonthTracker
	logger  *zap.Logger
}

// NewPricer creates a pricer over a table and a rule chain
func NewPricer(table *pricing.Table, chain *discount.Chain) *Pricer {
	return &Pricer{
		table:   table,
		chain:   chain,
		tracker: discount.NewMonthTracker(),
		logger:  logging.Logger,
	}
}

// WithLogger sets the logger used for month tracking messages
func (p *Pricer) WithLogger(logger *zap.Logger) *Pricer {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Price returns the final quote of a shipment. Result.Priceable is false
// when the size/provider pair is not in the table; rule state is left
// untouched in that case.
func (p *Pricer) Price(s types.Shipment) types.Result {
	base, ok := p.table.Lookup(s.Size, s.Provider)
	if !ok {
		return types.NotPriceable(s)
	}

	month, change := p.tracker.Observe(s)
	switch change {
	case discount.MonthRollover:
		p.logger.Debug("month rollover", zap.Stringer("month", month))
	case discount.MonthBackwards:
		p.logger.Warn("shipment month precedes latest month seen",
			zap.Stringer("month", month),
			zap.Stringer("shipment", s))
	}

	quote := p.chain.Apply(types.Quote{Price: base}, s)
	return types.Result{
		Shipment:  s,
		Quote:     quote,
		Base:      base,
		Priceable: true,
	}
}
