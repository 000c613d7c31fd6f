package journal

import (
	"time"

	"dailyReflectAPI/utils"
)

// ShouldRemind reports whether the "did you journal today" reminder should
// surface: true iff no entry in the collection is dated today. There is no
// dismissed state; the reminder comes back as long as the condition holds.
func ShouldRemind(entries []Entry, today time.Time) bool {
	day := utils.FormatDateISO(today)
	for _, e := range entries {
		if e.Date == day {
			return false
		}
	}
	return true
}
