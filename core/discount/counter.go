package discount

import "shipment-discount/core/types"

// monthlyCounter accumulates a non-negative amount per calendar month.
// Entries are never evicted; a month never seen reads as zero.
type monthlyCounter struct {
	values map[types.MonthKey]int64
}

func newMonthlyCounter() *monthlyCounter {
	return &monthlyCounter{values: make(map[types.MonthKey]int64)}
}

func (c *monthlyCounter) get(k types.MonthKey) int64 {
	return c.values[k]
}

// add increases the month's value and returns the new total
func (c *monthlyCounter) add(k types.MonthKey, n int64) int64 {
	if n < 0 {
		panic("INVARIANT VIOLATED: monthly counters never decrease")
	}
	c.values[k] += n
	return c.values[k]
}

func (c *monthlyCounter) months() int {
	return len(c.values)
}
