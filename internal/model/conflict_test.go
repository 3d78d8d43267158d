package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightConflict_FinalSchedule(t *testing.T) {
	base := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	morning := time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)

	conflict := &NightConflict{
		AllScheduledDates: []time.Time{
			base.Add(5 * time.Second),
			base.Add(10 * time.Minute),
			base.Add(time.Hour),
		},
		ConflictingDates: []time.Time{
			base.Add(10 * time.Minute),
			base.Add(time.Hour),
		},
		PostponedDates: []time.Time{morning, morning},
	}

	final := conflict.FinalSchedule()
	require.Len(t, final, 3)

	assert.True(t, base.Add(5*time.Second).Equal(final[0]))
	// Duplicate postponement targets stay distinct entries.
	assert.True(t, morning.Equal(final[1]))
	assert.True(t, morning.Equal(final[2]))
}

func TestNightConflict_FinalSchedule_NoConflicts(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 8, 0, 5, 0, time.UTC),
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	conflict := &NightConflict{AllScheduledDates: dates}

	assert.Equal(t, dates, conflict.FinalSchedule())
	assert.Equal(t, 0, conflict.ConflictCount())
}

func TestNightConflict_FinalSchedule_Sorted(t *testing.T) {
	base := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	conflict := &NightConflict{
		AllScheduledDates: []time.Time{
			base,
			base.Add(time.Hour),
			base.Add(26 * time.Hour),
		},
		ConflictingDates: []time.Time{base.Add(time.Hour)},
		// Postponed ahead of a non-conflicting later entry; merge must re-sort.
		PostponedDates: []time.Time{base.Add(9 * time.Hour)},
	}

	final := conflict.FinalSchedule()
	for i := 1; i < len(final); i++ {
		assert.False(t, final[i].Before(final[i-1]), "final schedule out of order at %d", i)
	}
}
