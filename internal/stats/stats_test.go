package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyReflectAPI/internal/journal"
	"dailyReflectAPI/internal/mood"
)

func TestWeeklyMoodsEmpty(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) // a Sunday
	week := WeeklyMoods(nil, today)
	require.Len(t, week, 7)

	assert.Equal(t, "Mon", week[0].Day)
	assert.Equal(t, "Sun", week[6].Day)
	for _, d := range week {
		assert.Zero(t, d.Value)
		assert.Empty(t, d.Mood)
	}
}

func TestWeeklyMoodsAveragesPerDay(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	entries := []journal.Entry{
		{Date: "2026-08-30", Mood: mood.ValueAmazing}, // Sun: 5
		{Date: "2026-08-30", Mood: mood.ValueGood},    // Sun: 4 -> avg 4.5
		{Date: "2026-08-29", Mood: mood.ValueAwful},   // Sat: 1
		{Date: "2026-08-20", Mood: mood.ValueGood},    // outside the window
	}

	week := WeeklyMoods(entries, today)
	require.Len(t, week, 7)

	sun := week[6]
	assert.Equal(t, "Sun", sun.Day)
	assert.Equal(t, 4.5, sun.Value)

	sat := week[5]
	assert.Equal(t, "Sat", sat.Day)
	assert.Equal(t, 1.0, sat.Value)
	assert.Equal(t, mood.ValueAwful, sat.Mood)

	// The entry from ten days ago contributed nothing.
	for _, d := range week[:5] {
		assert.Zero(t, d.Value)
	}
}

func TestWeeklyMoodsClosestMood(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// 5 and 4 average to 4.5; 5 and 3 average to 4 exactly.
	entries := []journal.Entry{
		{Date: "2026-08-29", Mood: mood.ValueAmazing},
		{Date: "2026-08-29", Mood: mood.ValueOkay},
	}
	week := WeeklyMoods(entries, today)
	assert.Equal(t, mood.ValueGood, week[5].Mood)
}

func TestDistribution(t *testing.T) {
	assert.Nil(t, Distribution(nil))

	entries := []journal.Entry{
		{Mood: mood.ValueGood},
		{Mood: mood.ValueGood},
		{Mood: mood.ValueGood},
		{Mood: mood.ValueAwful},
		{Mood: "legacy-value"}, // skipped
	}

	dist := Distribution(entries)
	require.Len(t, dist, 2, "only moods with entries appear")

	// Catalog order: Good before Awful.
	assert.Equal(t, "Good", dist[0].Mood)
	assert.Equal(t, 3, dist[0].Count)
	assert.Equal(t, 75, dist[0].Percentage)
	assert.Equal(t, "#3B82F6", dist[0].Color)

	assert.Equal(t, "Awful", dist[1].Mood)
	assert.Equal(t, 1, dist[1].Count)
	assert.Equal(t, 25, dist[1].Percentage)
}
