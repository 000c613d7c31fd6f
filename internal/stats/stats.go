package stats

import (
	"math"
	"time"

	"dailyReflectAPI/internal/journal"
	"dailyReflectAPI/internal/mood"
)

// WeeklyMood is one weekday of the home-screen trend chart.
type WeeklyMood struct {
	Day   string  `json:"day"`   // "Mon" .. "Sun"
	Value float64 `json:"value"` // average severity for that day, 0 when empty
	Mood  string  `json:"mood"`  // catalog value closest to the average
}

// MoodDistribution is one slice of the mood breakdown.
type MoodDistribution struct {
	Mood       string `json:"mood"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
	Count      int    `json:"count"`
}

// WeeklyMoods averages entry severity per weekday over the 7 days ending at
// today. Days without entries stay at 0 with no mood.
func WeeklyMoods(entries []journal.Entry, today time.Time) []WeeklyMood {
	type bucket struct {
		sum   int
		count int
	}
	buckets := map[string]*bucket{}
	start := today.AddDate(0, 0, -6)
	startDay := start.Format("2006-01-02")
	endDay := today.Format("2006-01-02")

	for _, e := range entries {
		if e.Date < startDay || e.Date > endDay {
			continue
		}
		day, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		m, err := mood.Lookup(e.Mood)
		if err != nil {
			continue
		}
		key := day.Format("Mon")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += m.Severity
		b.count++
	}

	out := make([]WeeklyMood, 0, 7)
	for i := 0; i < 7; i++ {
		key := start.AddDate(0, 0, i).Format("Mon")
		wm := WeeklyMood{Day: key}
		if b, ok := buckets[key]; ok && b.count > 0 {
			wm.Value = math.Round(float64(b.sum)/float64(b.count)*10) / 10
			wm.Mood = closestMood(wm.Value)
		}
		out = append(out, wm)
	}
	return out
}

// Distribution counts entries per mood across the whole collection. Moods
// with no entries are omitted; percentages are rounded against the total.
func Distribution(entries []journal.Entry) []MoodDistribution {
	counts := map[string]int{}
	total := 0
	for _, e := range entries {
		if !mood.IsValid(e.Mood) {
			continue
		}
		counts[e.Mood]++
		total++
	}
	if total == 0 {
		return nil
	}

	out := make([]MoodDistribution, 0, len(counts))
	for _, m := range mood.All() {
		count, ok := counts[m.Value]
		if !ok {
			continue
		}
		out = append(out, MoodDistribution{
			Mood:       m.Label,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
			Color:      m.Color,
			Count:      count,
		})
	}
	return out
}

func closestMood(avg float64) string {
	best := ""
	bestDiff := math.MaxFloat64
	for _, m := range mood.All() {
		diff := math.Abs(float64(m.Severity) - avg)
		if diff < bestDiff {
			bestDiff = diff
			best = m.Value
		}
	}
	return best
}
