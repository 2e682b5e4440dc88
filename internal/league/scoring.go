package league

// Points scores a player's check-in history. venues holds the venue of every
// check-in, one entry per game played. Every three distinct venues visited
// add one to the multiplier.
func Points[K comparable](venues []K) int {
	unique := make(map[K]struct{}, len(venues))
	for _, venue := range venues {
		unique[venue] = struct{}{}
	}
	return PointsFor(len(venues), len(unique))
}

func PointsFor(games, uniqueVenues int) int {
	if games <= 0 {
		return 0
	}
	multiplier := 1 + uniqueVenues/3
	return games * multiplier
}
