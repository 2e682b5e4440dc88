package server

import (
	"strings"
	"time"

	"triviatime/internal/league"
)

// parsePostDay resolves the :day segment of a post URL to the date of the
// next matching game day, counting today.
func parsePostDay(raw string, today time.Time) (time.Time, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "today":
		return league.Date(today), true
	case "tomorrow":
		return league.Date(today).AddDate(0, 0, 1), true
	}
	day, ok := league.ParseWeekday(raw)
	if !ok {
		return time.Time{}, false
	}
	return league.NextOccurrence(today, day), true
}
