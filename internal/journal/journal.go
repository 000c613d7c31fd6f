package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dailyReflectAPI/internal/mood"
	"dailyReflectAPI/utils"
)

// Entry is a persisted journal record. The ID is assigned by the store on
// create and the UserID always comes from the authenticated session.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"` // calendar day, YYYY-MM-DD
	Mood      string    `json:"mood"` // mood catalog value
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft is an entry held only in memory, before the store has confirmed it.
// It carries no ID on purpose: ids exist only once the store assigns one.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
}

// NewDraft starts an empty draft dated today.
func NewDraft(now time.Time) Draft {
	return Draft{Date: utils.FormatDateISO(now)}
}

// Validate checks whether the draft is submittable. Title, content and mood
// must all be non-blank; the mood must exist in the catalog. Returns a
// field -> message map, empty when the draft is valid.
func (d Draft) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Content) == "" {
		errs["content"] = "Content is required"
	}
	if strings.TrimSpace(d.Mood) == "" {
		errs["mood"] = "Please select a mood"
	} else if !mood.IsValid(d.Mood) {
		errs["mood"] = "Unknown mood"
	}
	return errs
}

// Normalize trims the text fields and defaults the date to today when the
// client left it out.
func (d Draft) Normalize(now time.Time) Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	d.Mood = strings.TrimSpace(d.Mood)
	if strings.TrimSpace(d.Date) == "" {
		d.Date = utils.FormatDateISO(now)
	}
	return d
}
