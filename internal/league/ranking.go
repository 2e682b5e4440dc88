package league

import (
	"cmp"
	"slices"
	"strings"
)

type PlayerScore struct {
	PID        int
	Name       string
	YearJoined int
	Points     int
}

type RankedPlayer struct {
	PlayerScore
	Rank int
}

// RankPlayers orders players by points (descending) and assigns standard
// competition ranks: tied players share a rank and the next distinct score
// skips ahead by the size of the tie (1, 1, 3, ...). Names break ties for
// display order only.
func RankPlayers(players []PlayerScore) []RankedPlayer {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b PlayerScore) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})

	ranked := make([]RankedPlayer, len(sorted))
	for i, player := range sorted {
		rank := i + 1
		if i > 0 && player.Points == sorted[i-1].Points {
			rank = ranked[i-1].Rank
		}
		ranked[i] = RankedPlayer{PlayerScore: player, Rank: rank}
	}
	return ranked
}

type VenueStanding struct {
	District string
	Code     string
	Venue    string
	Win      int
	Defend   int
	Place    int
}

// TotalPoints counts wins and defenses double.
func (s VenueStanding) TotalPoints() int {
	return 2*(s.Win+s.Defend) + s.Place
}

// SortPennantStandings orders standings by district, then total points
// (descending), then venue name.
func SortPennantStandings(standings []VenueStanding) {
	slices.SortStableFunc(standings, func(a, b VenueStanding) int {
		if c := strings.Compare(a.District, b.District); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalPoints(), a.TotalPoints()); c != 0 {
			return c
		}
		return strings.Compare(a.Venue, b.Venue)
	})
}
