package model

import (
	"sort"
	"time"
)

// NightConflict is the outcome of evaluating a candidate reminder timeline
// against the night window. It is transient: built when a caller asks for
// conflict evaluation and discarded once the caller commits the final schedule
// or aborts. Never persisted.
type NightConflict struct {
	// AllScheduledDates is the full candidate timeline, ascending, exactly as
	// produced by the forgetting curve.
	AllScheduledDates []time.Time
	// ConflictingDates is the subsequence of AllScheduledDates that falls in
	// the night window, in original order.
	ConflictingDates []time.Time
	// PostponedDates holds one replacement per conflicting date, paired by index.
	PostponedDates []time.Time
	// Region is a coarse label of the user's timezone, used for messaging only.
	Region string
}

// ConflictCount returns the number of reminders needing postponement.
func (c *NightConflict) ConflictCount() int {
	return len(c.ConflictingDates)
}

// FinalSchedule merges the non-conflicting dates with the postponed
// replacements, sorted ascending. Duplicate timestamps remain distinct entries.
func (c *NightConflict) FinalSchedule() []time.Time {
	conflicting := make(map[time.Time]int, len(c.ConflictingDates))
	for _, d := range c.ConflictingDates {
		conflicting[d]++
	}

	merged := make([]time.Time, 0, len(c.AllScheduledDates))
	for _, d := range c.AllScheduledDates {
		if n := conflicting[d]; n > 0 {
			conflicting[d] = n - 1
			continue
		}
		merged = append(merged, d)
	}
	merged = append(merged, c.PostponedDates...)

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	return merged
}
