package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyReflectAPI/internal/mood"
)

func TestNewDraftDefaultsDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)
	d := NewDraft(now)
	assert.Equal(t, "2026-08-30", d.Date)
	assert.Empty(t, d.Title)
	assert.Empty(t, d.Mood)
}

func TestDraftValidate(t *testing.T) {
	// Everything missing: one message per field.
	errs := Draft{}.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, "Title is required", errs["title"])
	assert.Equal(t, "Content is required", errs["content"])
	assert.Equal(t, "Please select a mood", errs["mood"])

	// Whitespace counts as blank.
	errs = Draft{Title: "   ", Content: "\t", Mood: mood.ValueGood}.Validate()
	assert.Len(t, errs, 2)

	// A mood outside the catalog is rejected even when present.
	errs = Draft{Title: "t", Content: "c", Mood: "notGreat"}.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Unknown mood", errs["mood"])

	errs = Draft{Title: "t", Content: "c", Mood: mood.ValueNotGreat}.Validate()
	assert.Empty(t, errs)
}

func TestDraftNormalize(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	d := Draft{Title: "  hello  ", Content: " world ", Mood: " good "}.Normalize(now)
	assert.Equal(t, "hello", d.Title)
	assert.Equal(t, "world", d.Content)
	assert.Equal(t, "good", d.Mood)
	assert.Equal(t, "2026-08-30", d.Date)

	// A date the client already set is kept.
	d = Draft{Date: "2026-01-02"}.Normalize(now)
	assert.Equal(t, "2026-01-02", d.Date)
}

func TestShouldRemind(t *testing.T) {
	today := time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)

	assert.True(t, ShouldRemind(nil, today), "empty collection reminds")

	yesterdayOnly := []Entry{{Date: "2026-08-29", Mood: mood.ValueOkay}}
	assert.True(t, ShouldRemind(yesterdayOnly, today))

	withToday := []Entry{
		{Date: "2026-08-28", Mood: mood.ValueGood},
		{Date: "2026-08-30", Mood: mood.ValueAwful},
	}
	assert.False(t, ShouldRemind(withToday, today))
}
