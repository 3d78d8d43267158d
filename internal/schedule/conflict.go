package schedule

import (
	"time"

	"github.com/recall-sh/recall/internal/model"
)

// Resolver classifies a candidate reminder timeline into conflicting and
// non-conflicting entries against a night window and computes postponed
// replacements. It holds no state beyond the window configuration.
type Resolver struct {
	Window NightWindow
}

// NewResolver creates a conflict resolver over the given night window.
func NewResolver(window NightWindow) Resolver {
	return Resolver{Window: window}
}

// Evaluate builds the timeline for the given creation time, category and
// multiplier, then checks entries from skipLeading onward against the night
// window. Returns nil when no checked entry conflicts, in which case the
// caller proceeds with the unmodified timeline.
//
// Postponement uses the next strict morning after each conflicting timestamp,
// so a postponed time can never precede the conflicting one.
func (r Resolver) Evaluate(createdAt time.Time, category model.Category, multiplier float64, skipLeading int) *model.NightConflict {
	all := AdjustedReminderDates(createdAt, category, multiplier)

	if skipLeading < 0 {
		skipLeading = 0
	}
	if skipLeading > len(all) {
		skipLeading = len(all)
	}

	var conflicting []time.Time
	for _, date := range all[skipLeading:] {
		if r.Window.IsNight(date) {
			conflicting = append(conflicting, date)
		}
	}

	if len(conflicting) == 0 {
		return nil
	}

	postponed := make([]time.Time, len(conflicting))
	for i, date := range conflicting {
		postponed[i] = r.Window.NextMorningAfter(date)
	}

	return &model.NightConflict{
		AllScheduledDates: all,
		ConflictingDates:  conflicting,
		PostponedDates:    postponed,
		Region:            r.Window.Region(),
	}
}
