package mood

import "errors"

// ErrNotFound is returned when a mood value is not in the catalog.
var ErrNotFound = errors.New("mood not found")

// Mood is the detailed catalog entry shown on the home screen.
type Mood struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Severity    int    `json:"severity"` // 1 = most negative, 5 = most positive
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
	Description string `json:"description"`
}

// CompactMood is the reduced variant used by the journal entry form.
type CompactMood struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Canonical mood identifiers. The app previously carried two spellings
// ("notGreat" and "not-great"); "not-great" is the one that persists.
const (
	ValueAmazing  = "amazing"
	ValueGood     = "good"
	ValueOkay     = "okay"
	ValueNotGreat = "not-great"
	ValueAwful    = "awful"
)

// DailyPrompt is the static gratitude prompt shown on the home screen.
const DailyPrompt = "What is one thing you're grateful for today?"

// catalog is ordered severity-descending for display. Lookups go by value.
var catalog = []Mood{
	{Value: ValueAmazing, Label: "Amazing", Severity: 5, Emoji: "😊", Color: "#10B981", BgColor: "bg-green-100", Description: "Feeling fantastic and energetic"},
	{Value: ValueGood, Label: "Good", Severity: 4, Emoji: "🙂", Color: "#3B82F6", BgColor: "bg-blue-100", Description: "Having a positive day"},
	{Value: ValueOkay, Label: "Okay", Severity: 3, Emoji: "😐", Color: "#F59E0B", BgColor: "bg-yellow-100", Description: "Neutral, not bad but not great"},
	{Value: ValueNotGreat, Label: "Not Great", Severity: 2, Emoji: "😞", Color: "#F97316", BgColor: "bg-orange-100", Description: "Things could be better"},
	{Value: ValueAwful, Label: "Awful", Severity: 1, Emoji: "😢", Color: "#EF4444", BgColor: "bg-red-100", Description: "Having a really tough time"},
}

// compactCatalog mirrors catalog 1:1 on the value set, with the colors the
// journal form uses.
var compactCatalog = []CompactMood{
	{Value: ValueAmazing, Label: "Amazing", Emoji: "😊", Color: "#22c55e"},
	{Value: ValueGood, Label: "Good", Emoji: "🙂", Color: "#3b82f6"},
	{Value: ValueOkay, Label: "Okay", Emoji: "😐", Color: "#eab308"},
	{Value: ValueNotGreat, Label: "Not Great", Emoji: "😞", Color: "#f97316"},
	{Value: ValueAwful, Label: "Awful", Emoji: "😢", Color: "#ef4444"},
}

// All returns the detailed catalog, severity-descending.
func All() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// AllCompact returns the journal-form variant, same order as All.
func AllCompact() []CompactMood {
	out := make([]CompactMood, len(compactCatalog))
	copy(out, compactCatalog)
	return out
}

// Lookup finds a detailed mood by its value.
func Lookup(value string) (Mood, error) {
	for _, m := range catalog {
		if m.Value == value {
			return m, nil
		}
	}
	return Mood{}, ErrNotFound
}

// LookupCompact finds a compact mood by its value.
func LookupCompact(value string) (CompactMood, error) {
	for _, m := range compactCatalog {
		if m.Value == value {
			return m, nil
		}
	}
	return CompactMood{}, ErrNotFound
}

// IsValid reports whether value is a known mood identifier.
func IsValid(value string) bool {
	_, err := Lookup(value)
	return err == nil
}
