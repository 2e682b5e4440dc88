package league

import (
	"fmt"
	"strings"
	"time"
)

type Announcement struct {
	Title        string
	Description  string
	URL          string
	ImageURL     string
	DisplayStart time.Time
	DisplayEnd   *time.Time
}

// IsActive is true when now is after DisplayStart and, if an end is set, not
// after DisplayEnd.
func (a Announcement) IsActive(now time.Time) bool {
	if !a.DisplayStart.Before(now) {
		return false
	}
	return a.DisplayEnd == nil || !now.After(*a.DisplayEnd)
}

// IsURLInternal reports whether URL points at a page on this site.
func (a Announcement) IsURLInternal() bool {
	if a.URL == "" {
		return false
	}
	if strings.HasPrefix(a.URL, "http") || strings.HasPrefix(a.URL, "www") {
		return false
	}
	for _, suffix := range []string{".com", ".org", ".gov", ".io", ".edu"} {
		if strings.Contains(a.URL, suffix) {
			return false
		}
	}
	return true
}

// ActiveAnnouncements keeps the announcements active at now, preserving order.
func ActiveAnnouncements(all []Announcement, now time.Time) []Announcement {
	active := make([]Announcement, 0, len(all))
	for _, a := range all {
		if a.IsActive(now) {
			active = append(active, a)
		}
	}
	return active
}

// PennantAnnouncement builds the "Next ... Pennant Game" blurb for a district
// whose pennant is held by holder.
func PennantAnnouncement(p Pennant, holder Venue, today time.Time) Announcement {
	game := HolderNextGame(holder, p, today)
	day := LongDate(game)
	if game.Equal(Date(today)) {
		day = "Today"
	}
	var description string
	if holder.NameIncludesCity() {
		description = fmt.Sprintf("%s at %s at %s", day, holder.Name, holder.Time.Long())
	} else {
		description = fmt.Sprintf("%s at %s %s %s at %s",
			day, holder.Name, holder.Preposition(), holder.City(), holder.Time.Long())
	}
	return Announcement{
		Title:       fmt.Sprintf("Next %s Game", p.Name()),
		Description: description,
	}
}

// EventAnnouncement derives the announcement shown ahead of a special event.
// The display window opens lead before the event and closes when it starts.
func EventAnnouncement(title string, at time.Time, location, url string, lead time.Duration) Announcement {
	end := at
	return Announcement{
		Title:        title,
		Description:  fmt.Sprintf("%s at %s. click here for more info", EventDateString(at), FirstLine(location)),
		URL:          url,
		DisplayStart: at.Add(-lead),
		DisplayEnd:   &end,
	}
}

// EventDateString renders "Saturday, May 4th (7:00pm)".
func EventDateString(at time.Time) string {
	clock := GameTime{Hour: at.Hour(), Minute: at.Minute()}
	return fmt.Sprintf("%s (%s)", LongDate(at), clock.Long())
}

func FirstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}

type Clue struct {
	Date  time.Time
	Title string
	URL   string
}

// ClueExpired reports whether a clue dated date is older than the retention
// window as of today. A clue for today, or for exactly retentionDays ago,
// is still current.
func ClueExpired(date, today time.Time, retentionDays int) bool {
	cutoff := Date(today).AddDate(0, 0, -retentionDays)
	return Date(date).Before(cutoff)
}
