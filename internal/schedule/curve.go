package schedule

import (
	"time"

	"github.com/recall-sh/recall/internal/model"
)

// SkipLeadingCount is the number of leading short-lag offsets (under ten
// minutes) that are exempt from night-window postponement. They fire almost
// immediately after creation regardless of the time of day.
const SkipLeadingCount = 3

// Forgetting-curve offset tables. Each category shares the same leading
// prefix; longer content gets a more spread-out tail. Offsets grow roughly
// geometrically per the Ebbinghaus model.
var (
	shortOffsets = []time.Duration{
		5 * time.Second,
		25 * time.Second,
		2 * time.Minute,
		10 * time.Minute,
		time.Hour,
		24 * time.Hour,
	}

	mediumOffsets = append(shortOffsets[:len(shortOffsets):len(shortOffsets)],
		3*24*time.Hour,
		7*24*time.Hour,
	)

	longOffsets = append(mediumOffsets[:len(mediumOffsets):len(mediumOffsets)],
		14*24*time.Hour,
		30*24*time.Hour,
	)
)

// Offsets returns the base offset table for the given category. Unknown
// categories fall back to the short table.
func Offsets(category model.Category) []time.Duration {
	switch category {
	case model.CategoryMedium:
		return mediumOffsets
	case model.CategoryLong:
		return longOffsets
	default:
		return shortOffsets
	}
}

// ReminderDates produces the base reminder timeline for content created at
// the given time. The result is strictly ascending and a pure function of its
// inputs.
func ReminderDates(from time.Time, category model.Category) []time.Time {
	return AdjustedReminderDates(from, category, 1.0)
}

// AdjustedReminderDates produces the reminder timeline with every offset
// scaled by the item's interval multiplier. A multiplier of 1.0 reproduces
// the base timeline exactly; any multiplier > 0 preserves strict ascending
// order because scaling is monotonic over the ascending offset table.
func AdjustedReminderDates(from time.Time, category model.Category, multiplier float64) []time.Time {
	offsets := Offsets(category)
	dates := make([]time.Time, len(offsets))
	for i, offset := range offsets {
		scaled := time.Duration(float64(offset) * multiplier)
		dates[i] = from.Add(scaled)
	}
	return dates
}
