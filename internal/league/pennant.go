package league

import (
	"strings"
	"time"
)

// Pennant is the traveling trophy of one district.
type Pennant struct {
	District string
	NextGame time.Time
}

// Name renders "North Pennant".
func (p Pennant) Name() string {
	return p.District + " Pennant"
}

// PennantName is the district's trophy name for a venue, or "" when the
// venue is not in a district.
func PennantName(v Venue) string {
	if v.District == "" {
		return ""
	}
	return Pennant{District: v.District}.Name()
}

// NextPennantGame returns the date the pennant is next contested at v.
// A current holder keeps the stored date while it is not in the past.
// Otherwise the game lands on v's weekday in the week after the coming
// Monday; pennant weeks start on Mondays.
func NextPennantGame(v Venue, p Pennant, today time.Time) time.Time {
	today = Date(today)
	if v.HasPennant && !p.NextGame.IsZero() && !Date(p.NextGame).Before(today) {
		return Date(p.NextGame)
	}
	untilMonday := 7 - Weekday(today)
	return today.AddDate(0, 0, untilMonday+v.Day)
}

// HolderNextGame returns the date holder next defends p. Once the stored
// date has passed the holder defends at its next regular game, skipping
// any hold.
func HolderNextGame(holder Venue, p Pennant, today time.Time) time.Time {
	today = Date(today)
	if !p.NextGame.IsZero() && !Date(p.NextGame).Before(today) {
		return Date(p.NextGame)
	}
	return NextRegularGame(holder, today)
}

// IsPennantGame reports whether v defends its pennant on day.
func IsPennantGame(v Venue, p Pennant, day time.Time) bool {
	if !v.HasPennant {
		return false
	}
	return HolderNextGame(v, p, day).Equal(Date(day))
}

// ShoutName upper-cases a pennant name for social posts.
func ShoutName(name string) string {
	return strings.ToUpper(name)
}
