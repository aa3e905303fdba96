package discount

import "shipment-discount/core/types"

// MonthChange describes how a shipment's month relates to the ones seen before
type MonthChange int

const (
	// MonthSame means the shipment is in the latest month seen
	MonthSame MonthChange = iota

	// MonthFirst means this is the first shipment observed
	MonthFirst

	// MonthRollover means the shipment starts a later month
	MonthRollover

	// MonthBackwards means the shipment belongs to an earlier month than
	// the latest one seen. Keyed rule state still prices it against its
	// own month, but the input is out of order.
	MonthBackwards
)

// String returns the change name
func (c MonthChange) String() string {
	switch c {
	case MonthFirst:
		return "first"
	case MonthRollover:
		return "rollover"
	case MonthBackwards:
		return "backwards"
	default:
		return "same"
	}
}

// MonthTracker follows the month of successive shipments
type MonthTracker struct {
	current types.MonthKey
	latest  types.MonthKey
}

// NewMonthTracker creates a tracker that has seen nothing yet
func NewMonthTracker() *MonthTracker {
	return &MonthTracker{}
}

// Observe records a shipment and reports its month and how it changed
func (t *MonthTracker) Observe(s types.Shipment) (types.MonthKey, MonthChange) {
	key := s.Month()
	switch {
	case t.latest.IsZero():
		t.current, t.latest = key, key
		return key, MonthFirst
	case key == t.current:
		return key, MonthSame
	case key.Before(t.latest):
		t.current = key
		return key, MonthBackwards
	default:
		t.current = key
		if t.latest.Before(key) {
			t.latest = key
			return key, MonthRollover
		}
		// Back to the latest month after an out-of-order record.
		return key, MonthSame
	}
}

// Current returns the month of the last observed shipment
func (t *MonthTracker) Current() types.MonthKey {
	return t.current
}
