package league

import (
	"fmt"
	"strings"
	"time"
)

// GameTime is a venue's weekly start time.
type GameTime struct {
	Hour   int
	Minute int
}

// Short renders "7pm" or "6:30pm".
func (g GameTime) Short() string {
	hour, suffix := g.clock()
	if g.Minute == 0 {
		return fmt.Sprintf("%d%s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", hour, g.Minute, suffix)
}

// Long renders "7:00pm".
func (g GameTime) Long() string {
	hour, suffix := g.clock()
	return fmt.Sprintf("%d:%02d%s", hour, g.Minute, suffix)
}

func (g GameTime) clock() (int, string) {
	suffix := "am"
	if g.Hour >= 12 {
		suffix = "pm"
	}
	hour := g.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return hour, suffix
}

// Hold pauses a venue's games from Start through End (inclusive). A nil End
// means the hold lasts until removed.
type Hold struct {
	Start   time.Time
	End     *time.Time
	Message string
}

// ActiveOn reports whether day falls inside the hold.
func (h *Hold) ActiveOn(day time.Time) bool {
	if h == nil {
		return false
	}
	day = Date(day)
	if day.Before(Date(h.Start)) {
		return false
	}
	return h.End == nil || !day.After(Date(*h.End))
}

// Expired reports whether the hold ended before day.
func (h *Hold) Expired(day time.Time) bool {
	if h == nil || h.End == nil {
		return false
	}
	return Date(day).After(Date(*h.End))
}

type Venue struct {
	Code       string
	Name       string
	Address    string
	Day        int
	Time       GameTime
	District   string
	HasPennant bool
	Hold       *Hold
}

// cityLine is the part of the last address line before the first comma.
func (v Venue) cityLine() string {
	lines := strings.Split(strings.TrimSpace(v.Address), "\n")
	last := lines[len(lines)-1]
	return strings.TrimSpace(strings.Split(last, ",")[0])
}

// City is the venue's city without any trailing " Island".
func (v Venue) City() string {
	city := v.cityLine()
	if i := strings.Index(city, " Island"); i >= 0 {
		city = city[:i]
	}
	return strings.TrimSpace(city)
}

// OnIsland reports whether the venue's city is named as an island.
func (v Venue) OnIsland() bool {
	return strings.Contains(v.cityLine(), " Island")
}

// Preposition is "on" for island cities and "in" everywhere else.
func (v Venue) Preposition() string {
	if v.OnIsland() {
		return "on"
	}
	return "in"
}

// NameIncludesCity is true when repeating the city after the name would be
// redundant, e.g. "Bainbridge Brewing".
func (v Venue) NameIncludesCity() bool {
	city := strings.ToLower(v.City())
	return city != "" && strings.Contains(strings.ToLower(v.Name), city)
}

// NextRegularGame returns the next date on or after today whose weekday is
// the venue's game day. A venue on hold resumes from the hold's end date.
func NextRegularGame(v Venue, today time.Time) time.Time {
	from := Date(today)
	if v.Hold.ActiveOn(from) && v.Hold.End != nil {
		from = Date(*v.Hold.End)
	}
	return NextOccurrence(from, v.Day)
}
