package league

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays are numbered from Monday (0) to Sunday (6).
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Date truncates t to a calendar date at midnight UTC. All dates handled by
// this package are normalized this way so they compare with Equal.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return Date(now)
}

func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayNames[day]
}

// ParseWeekday accepts a full day name in any case.
func ParseWeekday(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, candidate := range weekdayNames {
		if strings.EqualFold(candidate, name) {
			return i, true
		}
	}
	return 0, false
}

// NextOccurrence returns the first date on or after from whose weekday is day.
func NextOccurrence(from time.Time, day int) time.Time {
	from = Date(from)
	n := ((day-Weekday(from))%7 + 7) % 7
	return from.AddDate(0, 0, n)
}

// Ordinal turns 1 into "1st", 12 into "12th", 22 into "22nd".
func Ordinal(n int) string {
	suffix := "th"
	if (n/10)%10 != 1 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// LongDate renders "Monday, October 19th".
func LongDate(t time.Time) string {
	return t.Format("Monday, January ") + Ordinal(t.Day())
}

// ParseShortDate parses "MM/DD/YY"; the year is taken as 2000+YY.
func ParseShortDate(raw string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	var month, day, year int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1]+" "+parts[2], "%d %d %d", &month, &day, &year); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	if year < 0 || year > 99 {
		return time.Time{}, fmt.Errorf("invalid year in %q", raw)
	}
	parsed := time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if parsed.Month() != time.Month(month) || parsed.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return parsed, nil
}

// ParseISODate parses "YYYY-MM-DD".
func ParseISODate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}

// ParseDate accepts YYYY-MM-DD or MM/DD/YY.
func ParseDate(raw string) (time.Time, error) {
	if day, err := ParseISODate(raw); err == nil {
		return day, nil
	}
	return ParseShortDate(raw)
}
