package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shipment-discount/core/types"
)

func TestMonthTracker(t *testing.T) {
	tracker := NewMonthTracker()

	steps := []struct {
		date   string
		month  types.MonthKey
		change MonthChange
	}{
		{"2015-02-01", types.MonthKey{Year: 2015, Month: time.February}, MonthFirst},
		{"2015-02-28", types.MonthKey{Year: 2015, Month: time.February}, MonthSame},
		{"2015-03-01", types.MonthKey{Year: 2015, Month: time.March}, MonthRollover},
		{"2015-02-15", types.MonthKey{Year: 2015, Month: time.February}, MonthBackwards},
		{"2015-03-02", types.MonthKey{Year: 2015, Month: time.March}, MonthSame},
		{"2016-03-02", types.MonthKey{Year: 2016, Month: time.March}, MonthRollover},
		{"2016-01-02", types.MonthKey{Year: 2016, Month: time.January}, MonthBackwards},
	}

	for _, st := range steps {
		month, change := tracker.Observe(shipment(t, st.date, types.SizeSmall, types.ProviderLP))
		assert.Equal(t, st.month, month, st.date)
		assert.Equal(t, st.change, change, "%s: got %s", st.date, change)
		assert.Equal(t, st.month, tracker.Current())
	}
}

func TestMonthKeyOrdering(t *testing.T) {
	dec := types.MonthKey{Year: 2014, Month: time.December}
	jan := types.MonthKey{Year: 2015, Month: time.January}
	feb := types.MonthKey{Year: 2015, Month: time.February}

	assert.True(t, dec.Before(jan))
	assert.True(t, jan.Before(feb))
	assert.False(t, feb.Before(jan))
	assert.False(t, feb.Before(feb))
	assert.Equal(t, "2015-02", feb.String())
}

func TestMonthlyCounterRejectsDecrease(t *testing.T) {
	c := newMonthlyCounter()
	k := types.MonthKey{Year: 2015, Month: time.February}
	assert.EqualValues(t, 5, c.add(k, 5))
	assert.Equal(t, 1, c.months())
	assert.Panics(t, func() { c.add(k, -1) })
}
