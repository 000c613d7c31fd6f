package utils

import "time"

// FormatDateISO renders a calendar day the way journal entries store it.
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateUS renders the MM/DD/YYYY display date used by goals.
func FormatDateUS(t time.Time) string {
	return t.Format("01/02/2006")
}
