package goal

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"dailyReflectAPI/utils"
)

// Goal is a tracked monthly objective. Only the completion flag is mutable
// after creation, through a dedicated partial update.
type Goal struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Date      string    `json:"date"` // display date, MM/DD/YYYY
	Completed bool      `json:"completed"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Optional numeric progress for the home-screen cards.
	Progress *int    `json:"progress,omitempty"`
	Target   *int    `json:"target,omitempty"`
	Unit     *string `json:"unit,omitempty"`
}

// Draft is the add-goal form payload, unconfirmed by the store.
type Draft struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Date  string `json:"date"`
}

// Validate requires title, description and date to be non-blank. No length
// minimums here, unlike account registration.
func (d Draft) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Text) == "" {
		errs["text"] = "Description is required"
	}
	if strings.TrimSpace(d.Date) == "" {
		errs["date"] = "Date is required"
	}
	return errs
}

// Normalize trims the form fields and defaults the date to today.
func (d Draft) Normalize(now time.Time) Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Text = strings.TrimSpace(d.Text)
	d.Date = strings.TrimSpace(d.Date)
	if d.Date == "" {
		d.Date = utils.FormatDateUS(now)
	}
	return d
}

// ProgressPercent is min(100, round(progress/target*100)). A zero or unset
// target reads as 0% rather than dividing.
func (g Goal) ProgressPercent() int {
	if g.Target == nil || *g.Target == 0 || g.Progress == nil {
		return 0
	}
	pct := math.Round(float64(*g.Progress) / float64(*g.Target) * 100)
	if pct > 100 {
		return 100
	}
	return int(pct)
}
