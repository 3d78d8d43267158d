package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recall-sh/recall/internal/model"
)

func TestReminderDates_BaseOffsets(t *testing.T) {
	from := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	dates := ReminderDates(from, model.CategoryShort)
	require.Len(t, dates, 6)

	assert.True(t, from.Add(5*time.Second).Equal(dates[0]))
	assert.True(t, from.Add(25*time.Second).Equal(dates[1]))
	assert.True(t, from.Add(2*time.Minute).Equal(dates[2]))
	assert.True(t, from.Add(10*time.Minute).Equal(dates[3]))
	assert.True(t, from.Add(time.Hour).Equal(dates[4]))
	assert.True(t, from.Add(24*time.Hour).Equal(dates[5]))
}

func TestReminderDates_CategoryTables(t *testing.T) {
	from := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	short := ReminderDates(from, model.CategoryShort)
	medium := ReminderDates(from, model.CategoryMedium)
	long := ReminderDates(from, model.CategoryLong)

	assert.Len(t, short, 6)
	assert.Len(t, medium, 8)
	assert.Len(t, long, 10)

	// Shared prefix: longer categories extend the shorter timeline.
	for i, date := range short {
		assert.True(t, date.Equal(medium[i]), "medium prefix diverges at %d", i)
		assert.True(t, date.Equal(long[i]), "long prefix diverges at %d", i)
	}

	// Unknown category falls back to the short table.
	fallback := ReminderDates(from, model.Category("bogus"))
	assert.Equal(t, short, fallback)
}

func TestAdjustedReminderDates_ScalingIdentity(t *testing.T) {
	from := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	for _, category := range []model.Category{model.CategoryShort, model.CategoryMedium, model.CategoryLong} {
		base := ReminderDates(from, category)
		adjusted := AdjustedReminderDates(from, category, 1.0)
		assert.Equal(t, base, adjusted, "multiplier 1.0 must reproduce the base timeline for %s", category)
	}
}

func TestAdjustedReminderDates_StrictlyAscending(t *testing.T) {
	from := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	multipliers := []float64{0.1, 0.5, 1.0, 1.7, 3.0}

	for _, category := range []model.Category{model.CategoryShort, model.CategoryMedium, model.CategoryLong} {
		for _, multiplier := range multipliers {
			dates := AdjustedReminderDates(from, category, multiplier)
			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i].After(dates[i-1]),
					"timeline not strictly ascending at %d for %s x%.2f", i, category, multiplier)
			}
		}
	}
}

func TestAdjustedReminderDates_Deterministic(t *testing.T) {
	from := time.Date(2024, 6, 1, 18, 45, 12, 0, time.UTC)

	first := AdjustedReminderDates(from, model.CategoryMedium, 1.3)
	second := AdjustedReminderDates(from, model.CategoryMedium, 1.3)
	assert.Equal(t, first, second)
}

func TestAdjustedReminderDates_ScalesOffsets(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := AdjustedReminderDates(from, model.CategoryShort, 2.0)
	assert.True(t, from.Add(10*time.Second).Equal(dates[0]))
	assert.True(t, from.Add(48*time.Hour).Equal(dates[5]))
}
