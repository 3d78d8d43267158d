package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recall-sh/recall/internal/model"
)

func TestResolver_Evaluate_NoConflict(t *testing.T) {
	resolver := NewResolver(testWindow())

	// Created at 08:00: checked offsets land at 08:10, 09:00 and 08:00 next
	// day, all outside the night window.
	createdAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	conflict := resolver.Evaluate(createdAt, model.CategoryShort, 1.0, SkipLeadingCount)
	assert.Nil(t, conflict)
}

func TestResolver_Evaluate_SkipsLeadingEntries(t *testing.T) {
	resolver := NewResolver(testWindow())

	// Created at 23:00: the three sub-10-minute reminders fall in the night
	// window but are exempt from detection.
	createdAt := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	conflict := resolver.Evaluate(createdAt, model.CategoryShort, 1.0, SkipLeadingCount)
	require.NotNil(t, conflict)

	for _, conflicting := range conflict.ConflictingDates {
		assert.False(t, conflicting.Before(createdAt.Add(10*time.Minute)),
			"leading short-lag reminder %v must not be reported", conflicting)
	}
}

func TestResolver_Evaluate_NightScenario(t *testing.T) {
	window := testWindow()
	resolver := NewResolver(window)

	// Item created 23:30 local, category short. The 10min and 1h reminders
	// conflict and postpone to the next 07:00; the 1day reminder conflicts on
	// the following night and postpones one day later.
	createdAt := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	conflict := resolver.Evaluate(createdAt, model.CategoryShort, 1.0, SkipLeadingCount)
	require.NotNil(t, conflict)

	require.Len(t, conflict.ConflictingDates, 3)
	assert.True(t, time.Date(2024, 1, 1, 23, 40, 0, 0, time.UTC).Equal(conflict.ConflictingDates[0]))
	assert.True(t, time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC).Equal(conflict.ConflictingDates[1]))
	assert.True(t, time.Date(2024, 1, 2, 23, 30, 0, 0, time.UTC).Equal(conflict.ConflictingDates[2]))

	require.Len(t, conflict.PostponedDates, 3)
	assert.True(t, time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC).Equal(conflict.PostponedDates[0]))
	assert.True(t, time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC).Equal(conflict.PostponedDates[1]))
	assert.True(t, time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC).Equal(conflict.PostponedDates[2]))

	final := conflict.FinalSchedule()
	require.Len(t, final, len(conflict.AllScheduledDates))

	want := []time.Time{
		time.Date(2024, 1, 1, 23, 30, 5, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 30, 25, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 32, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC),
	}
	for i, date := range want {
		assert.True(t, date.Equal(final[i]), "final[%d]: want %v, got %v", i, date, final[i])
	}

	// No postponed replacement lies inside the night window.
	for _, date := range final[SkipLeadingCount:] {
		assert.False(t, window.IsNight(date), "final schedule still contains night reminder %v", date)
	}
}

func TestResolver_Evaluate_CompletenessAcrossMultipliers(t *testing.T) {
	resolver := NewResolver(testWindow())

	createdAts := []time.Time{
		time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 21, 45, 0, 0, time.UTC),
		time.Date(2024, 8, 20, 2, 15, 0, 0, time.UTC),
	}

	for _, createdAt := range createdAts {
		for _, category := range []model.Category{model.CategoryShort, model.CategoryMedium, model.CategoryLong} {
			for _, multiplier := range []float64{0.5, 1.0, 2.2} {
				conflict := resolver.Evaluate(createdAt, category, multiplier, SkipLeadingCount)
				if conflict == nil {
					continue
				}
				assert.Len(t, conflict.PostponedDates, len(conflict.ConflictingDates))
				assert.Len(t, conflict.FinalSchedule(), len(conflict.AllScheduledDates),
					"final schedule cardinality must match the candidate timeline")
			}
		}
	}
}

func TestResolver_Evaluate_SkipLeadingBounds(t *testing.T) {
	resolver := NewResolver(testWindow())
	createdAt := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	// A skip count beyond the table length checks nothing.
	assert.Nil(t, resolver.Evaluate(createdAt, model.CategoryShort, 1.0, 100))

	// A negative skip count checks the whole timeline.
	conflict := resolver.Evaluate(createdAt, model.CategoryShort, 1.0, -1)
	require.NotNil(t, conflict)
	assert.Len(t, conflict.ConflictingDates, 6)
}

func TestResolver_Evaluate_RegionAttached(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	resolver := NewResolver(NewNightWindow(DefaultNightStartHour, DefaultMorningWakeHour, loc))

	createdAt := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	conflict := resolver.Evaluate(createdAt, model.CategoryShort, 1.0, SkipLeadingCount)
	require.NotNil(t, conflict)
	assert.Equal(t, "Europe", conflict.Region)
}
