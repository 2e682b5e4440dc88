package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/league"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Default()
	cfg.DatabaseURL = "file::memory:?_pragma=foreign_keys(1)"
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewStore(conn)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := league.ParseISODate(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return day
}

// seedLeague creates the North district with BKR and PIG (Wednesdays at 7pm)
// and BBC (Mondays at 6:30pm, no district).
func seedLeague(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	north, err := store.EnsureDistrict(ctx, "North")
	if err != nil {
		t.Fatalf("district: %v", err)
	}
	venues := []Venue{
		{Code: "BKR", Name: "The Brass Kraken", Day: 2, Time: ClockTime(19, 0), Address: "18830 Front St NE\nPoulsbo, WA 98370", PennantDistrictID: &north.ID},
		{Code: "PIG", Name: "Slippery Pig Brewery", Day: 2, Time: ClockTime(19, 0), Address: "18801 Front St NE\nPoulsbo, WA 98370", PennantDistrictID: &north.ID},
		{Code: "BBC", Name: "Bainbridge Brewing", Day: 0, Time: ClockTime(18, 30), Address: "9415 Coppertop Loop NE\nBainbridge Island, WA 98110"},
	}
	for i := range venues {
		if err := store.SaveVenue(ctx, &venues[i]); err != nil {
			t.Fatalf("save venue %s: %v", venues[i].Code, err)
		}
	}
	for pid, name := range map[int]string{100: "Ada Lovelace", 101: "Grace Hopper", 102: "Alan Turing"} {
		if err := store.SavePlayer(ctx, &Player{PID: pid, Name: name}); err != nil {
			t.Fatalf("save player %d: %v", pid, err)
		}
	}
}

func TestSaveVenueCreatesStandingsForDistrictVenues(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)

	standings, err := store.PennantStandings(context.Background())
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected two district venues, got %d", len(standings))
	}
	var count int64
	store.DB().Model(&PennantStandings{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected two standings rows, got %d", count)
	}
}

func TestVenueConvertsToLeagueVenue(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)

	venue, err := store.VenueByCode(context.Background(), "BBC")
	if err != nil {
		t.Fatalf("venue: %v", err)
	}
	lv := venue.League()
	if lv.Time != (league.GameTime{Hour: 18, Minute: 30}) || lv.Day != 0 || lv.District != "" {
		t.Fatalf("unexpected league venue %+v", lv)
	}
	if _, err := store.VenueByCode(context.Background(), "ZZZ"); !errors.Is(err, ErrUnknownVenue) {
		t.Fatalf("expected unknown venue, got %v", err)
	}
}

func TestMovePennantLeavesOneHolder(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()
	today := mustDate(t, "2026-10-14")

	if _, err := store.MovePennant(ctx, "North", "BKR", today); err != nil {
		t.Fatalf("move to BKR: %v", err)
	}
	if _, err := store.MovePennant(ctx, "North", "PIG", today); err != nil {
		t.Fatalf("move to PIG: %v", err)
	}
	var holders []Venue
	store.DB().Where("has_pennant = ?", true).Find(&holders)
	if len(holders) != 1 || holders[0].Code != "PIG" {
		t.Fatalf("expected PIG as the only holder, got %+v", holders)
	}

	list, err := store.PennantHolders(ctx)
	if err != nil {
		t.Fatalf("holders: %v", err)
	}
	if len(list) != 1 || list[0].Holder == nil || list[0].Holder.Code != "PIG" {
		t.Fatalf("unexpected holders %+v", list)
	}
}

func TestMovePennantRejections(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()
	today := mustDate(t, "2026-10-14")

	if _, err := store.MovePennant(ctx, "South", "BKR", today); !errors.Is(err, ErrUnknownDistrict) {
		t.Fatalf("expected unknown district, got %v", err)
	}
	if _, err := store.MovePennant(ctx, "North", "ZZZ", today); !errors.Is(err, ErrUnknownVenue) {
		t.Fatalf("expected unknown venue, got %v", err)
	}
	if _, err := store.MovePennant(ctx, "North", "BBC", today); !errors.Is(err, ErrVenueOutsideDistrict) {
		t.Fatalf("expected venue outside district, got %v", err)
	}
}

func TestMovePennantSchedulesNextGame(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()
	today := mustDate(t, "2026-10-14")

	next, err := store.MovePennant(ctx, "North", "BKR", today)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !next.Equal(mustDate(t, "2026-10-21")) {
		t.Fatalf("expected 2026-10-21, got %s", next)
	}

	if err := store.SetNextPennantGame(ctx, "North", mustDate(t, "2026-10-16")); err != nil {
		t.Fatalf("set next game: %v", err)
	}
	next, err = store.MovePennant(ctx, "North", "BKR", today)
	if err != nil {
		t.Fatalf("move again: %v", err)
	}
	if !next.Equal(mustDate(t, "2026-10-16")) {
		t.Fatalf("expected the holder to keep its scheduled game, got %s", next)
	}

	announcements, err := store.PennantAnnouncements(ctx, today)
	if err != nil {
		t.Fatalf("announcements: %v", err)
	}
	if len(announcements) != 1 || announcements[0].Description != "Friday, October 16th at The Brass Kraken in Poulsbo at 7:00pm" {
		t.Fatalf("unexpected announcements %+v", announcements)
	}

	announcements, err = store.PennantAnnouncements(ctx, mustDate(t, "2026-10-22"))
	if err != nil {
		t.Fatalf("announcements after the stored game: %v", err)
	}
	if len(announcements) != 1 || announcements[0].Description != "Wednesday, October 28th at The Brass Kraken in Poulsbo at 7:00pm" {
		t.Fatalf("expected the holder's next regular game, got %+v", announcements)
	}
}

func TestHolderIndexRejectsSecondHolder(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)

	err := store.DB().Model(&Venue{}).Where("code IN ?", []string{"BKR", "PIG"}).Update("has_pennant", true).Error
	if err == nil {
		t.Fatalf("expected two holders in one district to be rejected")
	}
}

func TestUpdateStandings(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	if err := store.UpdateStandings(ctx, "PIG", 2, 1, 0); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.UpdateStandings(ctx, "BBC", 1, 0, 0); !errors.Is(err, ErrUnknownVenue) {
		t.Fatalf("expected venue without district to be rejected, got %v", err)
	}
	standings, err := store.PennantStandings(ctx)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if standings[0].Code != "PIG" || standings[0].TotalPoints() != 6 {
		t.Fatalf("unexpected standings %+v", standings)
	}
}

func TestRecordCheckIns(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	batch := league.CheckInBatch{
		Venue:      "BKR",
		Date:       "2026-10-14",
		Players:    []string{"100", "101"},
		NewPlayers: []league.NewPlayerEntry{{PID: "200", Name: "Hedy Lamarr"}},
	}
	if _, err := store.RecordCheckIns(ctx, batch); err != nil {
		t.Fatalf("record: %v", err)
	}
	if count, _ := store.CountVenueCheckIns(ctx, "BKR"); count != 3 {
		t.Fatalf("expected 3 check-ins, got %d", count)
	}
	if _, err := store.PlayerByPID(ctx, 200); err != nil {
		t.Fatalf("expected new player to be created: %v", err)
	}

	batch.NewPlayers = []league.NewPlayerEntry{{PID: "200", Name: "hedy lamarr"}}
	if _, err := store.RecordCheckIns(ctx, batch); err != nil {
		t.Fatalf("repeat: %v", err)
	}
	if count, _ := store.CountVenueCheckIns(ctx, "BKR"); count != 6 {
		t.Fatalf("expected repeated batch to add 3 check-ins, got %d", count)
	}
	if count, _ := store.CountPlayers(ctx); count != 4 {
		t.Fatalf("expected no duplicate player, got %d players", count)
	}
}

func TestRecordCheckInsPersistsNothingOnRejection(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	_, err := store.RecordCheckIns(ctx, league.CheckInBatch{
		Venue:      "BKR",
		Date:       "2026-10-14",
		Players:    []string{"100", "9999"},
		NewPlayers: []league.NewPlayerEntry{{PID: "300", Name: "Katherine Johnson"}},
	})
	var intake *league.IntakeError
	if !errors.As(err, &intake) || intake.Message != "no player exists with 9999 as their number" {
		t.Fatalf("unexpected error %v", err)
	}

	_, err = store.RecordCheckIns(ctx, league.CheckInBatch{
		Venue:      "BKR",
		Date:       "2026-10-14",
		Players:    []string{"100"},
		NewPlayers: []league.NewPlayerEntry{{PID: "300", Name: "Katherine Johnson"}, {PID: "101", Name: "Grace Kelly"}},
	})
	if !errors.As(err, &intake) || intake.Message != `#101 already exists as Grace Hopper... You said "Grace Kelly"` {
		t.Fatalf("unexpected error %v", err)
	}

	if count, _ := store.CountVenueCheckIns(ctx, "BKR"); count != 0 {
		t.Fatalf("expected no check-ins, got %d", count)
	}
	if _, err := store.PlayerByPID(ctx, 300); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no new player, got %v", err)
	}
}

func TestPlayerStandings(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	record := func(code string, pids ...string) {
		t.Helper()
		if _, err := store.RecordCheckIns(ctx, league.CheckInBatch{Venue: code, Date: "2026-10-14", Players: pids}); err != nil {
			t.Fatalf("record %s: %v", code, err)
		}
	}
	record("BKR", "100", "101", "102")
	record("PIG", "100", "102")
	record("BBC", "100")
	record("BKR", "100", "101")

	if points, err := store.PlayerPoints(ctx, 100); err != nil || points != 8 {
		t.Fatalf("expected 8 points for 4 games at 3 venues, got %d (%v)", points, err)
	}

	ranked, err := store.PlayerStandings(ctx, time.Now().Year(), time.UTC)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 players, got %d", len(ranked))
	}
	wantPIDs := []int{100, 102, 101}
	wantRanks := []int{1, 2, 2}
	for i, player := range ranked {
		if player.PID != wantPIDs[i] || player.Rank != wantRanks[i] {
			t.Fatalf("position %d: got pid %d rank %d", i, player.PID, player.Rank)
		}
	}
}

func TestPlayerStandingsCountsJoinYearInLeagueTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pacific := time.FixedZone("PST", -8*60*60)

	newYearsEve := time.Date(2026, 12, 31, 20, 0, 0, 0, pacific)
	if err := store.SavePlayer(ctx, &Player{PID: 200, Name: "Late Joiner", CreatedAt: newYearsEve}); err != nil {
		t.Fatalf("save player: %v", err)
	}

	ranked, err := store.PlayerStandings(ctx, 2026, pacific)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(ranked) != 1 || ranked[0].PID != 200 || ranked[0].YearJoined != 2026 {
		t.Fatalf("expected the player in the 2026 season, got %+v", ranked)
	}
	if ranked, _ := store.PlayerStandings(ctx, 2027, pacific); len(ranked) != 0 {
		t.Fatalf("expected nobody in 2027, got %+v", ranked)
	}
	if ranked, _ := store.PlayerStandings(ctx, 2027, time.UTC); len(ranked) != 1 {
		t.Fatalf("expected the player in 2027 when counted in UTC, got %+v", ranked)
	}
}

func TestClueRetentionAndSweep(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := mustDate(t, "2026-10-14")

	for _, clue := range []Clue{
		{Date: toDate(today), Title: "National Dessert Day"},
		{Date: toDate(today.AddDate(0, 0, -10)), Title: "Old News"},
	} {
		if err := store.SaveClue(ctx, &clue); err != nil {
			t.Fatalf("save clue: %v", err)
		}
	}

	if clue, ok, err := store.ClueFor(ctx, today, today, 7); err != nil || !ok || clue.Title != "National Dessert Day" {
		t.Fatalf("expected today's clue, got %+v %v %v", clue, ok, err)
	}
	if _, ok, err := store.ClueFor(ctx, today.AddDate(0, 0, -10), today, 7); err != nil || ok {
		t.Fatalf("expected old clue to be hidden, got %v %v", ok, err)
	}

	result, err := store.Sweep(ctx, time.Now(), today, 7)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if result.Clues != 1 {
		t.Fatalf("expected one clue swept, got %d", result.Clues)
	}
	var remaining int64
	store.DB().Model(&Clue{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("expected one clue left, got %d", remaining)
	}
}

func TestVenuesPlayingSkipsHolds(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	end := mustDate(t, "2026-10-20")
	if err := store.SetHold(ctx, "BKR", league.Hold{Start: mustDate(t, "2026-10-10"), End: &end, Message: "Closed for remodel"}); err != nil {
		t.Fatalf("hold: %v", err)
	}

	playing, err := store.VenuesPlaying(ctx, mustDate(t, "2026-10-14"))
	if err != nil {
		t.Fatalf("playing: %v", err)
	}
	if len(playing) != 1 || playing[0].Code != "PIG" {
		t.Fatalf("expected only PIG, got %+v", playing)
	}
	playing, err = store.VenuesPlaying(ctx, mustDate(t, "2026-10-21"))
	if err != nil {
		t.Fatalf("playing: %v", err)
	}
	if len(playing) != 2 {
		t.Fatalf("expected both venues after the hold, got %d", len(playing))
	}

	result, err := store.Sweep(ctx, time.Now(), mustDate(t, "2026-10-21"), 7)
	if err != nil || result.Holds != 1 {
		t.Fatalf("expected ended hold to be swept, got %+v %v", result, err)
	}
}

func TestSetHoldReplacesAndClearHoldResumes(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()
	wed := mustDate(t, "2026-10-14")

	if err := store.SetHold(ctx, "BKR", league.Hold{Start: wed, Message: "Closed"}); err != nil {
		t.Fatalf("hold: %v", err)
	}
	end := mustDate(t, "2026-10-30")
	if err := store.SetHold(ctx, "BKR", league.Hold{Start: wed, End: &end, Message: "Back on the 30th"}); err != nil {
		t.Fatalf("replace hold: %v", err)
	}
	var holds []Hold
	store.DB().Find(&holds)
	if len(holds) != 1 || holds[0].Message != "Back on the 30th" {
		t.Fatalf("expected the hold to be replaced, got %+v", holds)
	}

	if err := store.ClearHold(ctx, "BKR"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	playing, err := store.VenuesPlaying(ctx, wed)
	if err != nil || len(playing) != 2 {
		t.Fatalf("expected both venues once the hold is cleared, got %d (%v)", len(playing), err)
	}
	if err := store.ClearHold(ctx, "ZZZ"); !errors.Is(err, ErrUnknownVenue) {
		t.Fatalf("expected unknown venue, got %v", err)
	}
}

func TestDeleteVenueBlockedByCheckIns(t *testing.T) {
	store := newTestStore(t)
	seedLeague(t, store)
	ctx := context.Background()

	if _, err := store.RecordCheckIns(ctx, league.CheckInBatch{Venue: "BKR", Date: "2026-10-14", Players: []string{"100"}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.DeleteVenue(ctx, "BKR"); !errors.Is(err, ErrVenueInUse) {
		t.Fatalf("expected venue in use, got %v", err)
	}
	if err := store.AddVenueDiscount(ctx, "PIG", "$1 off pints"); err != nil {
		t.Fatalf("discount: %v", err)
	}
	if err := store.DeleteVenue(ctx, "PIG"); !errors.Is(err, ErrVenueInUse) {
		t.Fatalf("expected venue with discount to be kept, got %v", err)
	}
	if err := store.DeleteVenue(ctx, "BBC"); err != nil {
		t.Fatalf("delete unused venue: %v", err)
	}
}

func TestSaveEventReplacesAnnouncement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	startsAt := time.Date(2026, 12, 5, 19, 0, 0, 0, time.UTC)

	event := Event{Title: "Star Wars Trivia!", StartsAt: startsAt, Location: "The Brass Kraken\n18830 Front St NE", Description: "Costumes welcome."}
	if err := store.SaveEvent(ctx, &event, 60*24*time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	event.Title = "Star Wars Trivia Night"
	if err := store.SaveEvent(ctx, &event, 60*24*time.Hour); err != nil {
		t.Fatalf("save again: %v", err)
	}

	var announcements []Announcement
	store.DB().Find(&announcements)
	if len(announcements) != 1 {
		t.Fatalf("expected one announcement, got %d", len(announcements))
	}
	if announcements[0].URL != EventPath(event) || announcements[0].Title != "Star Wars Trivia Night" {
		t.Fatalf("unexpected announcement %+v", announcements[0])
	}

	active, err := store.ActiveAnnouncements(ctx, startsAt.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 || active[0].Description != "Saturday, December 5th (7:00pm) at The Brass Kraken. click here for more info" {
		t.Fatalf("unexpected active announcements %+v", active)
	}
	if active, _ := store.ActiveAnnouncements(ctx, startsAt.AddDate(0, 0, -61)); len(active) != 0 {
		t.Fatalf("expected announcement to be hidden before its window")
	}

	loaded, err := store.EventByID(ctx, event.ID)
	if err != nil || loaded.Announcement == nil {
		t.Fatalf("expected event with announcement, got %+v %v", loaded, err)
	}
}

func TestStaffAuthentication(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetStaffPassword(ctx, "host", "hunter2"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Authenticate(ctx, "host", "hunter2"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if _, err := store.Authenticate(ctx, "host", "wrong"); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("expected invalid login, got %v", err)
	}
	if err := store.SetStaffPassword(ctx, "host", "correct horse"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := store.Authenticate(ctx, "host", "hunter2"); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if _, err := store.Authenticate(ctx, "nobody", "hunter2"); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("expected unknown user to fail, got %v", err)
	}
}

func TestSessionsExpire(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	session := Session{ID: "abc", Username: "host", ExpiresAt: now.Add(time.Hour)}
	if err := store.SaveSession(ctx, &session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if loaded, err := store.LoadSession(ctx, "abc", now); err != nil || loaded.Username != "host" {
		t.Fatalf("expected session, got %+v %v", loaded, err)
	}
	if _, err := store.LoadSession(ctx, "abc", now.Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
	if err := store.DeleteSession(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.LoadSession(ctx, "abc", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted session, got %v", err)
	}
}

func TestLoadVenuesAndClues(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	venues := filepath.Join(dir, "venues.csv")
	venueCSV := "code,name,day,time,address,district,url\n" +
		"bkr,The Brass Kraken,Wednesday,7pm,\"18830 Front St NE\nPoulsbo, WA 98370\",North,https://brasskraken.com\n" +
		"BBC,Bainbridge Brewing,0,18:30,9415 Coppertop Loop NE\\nBainbridge Island,,\n"
	if err := os.WriteFile(venues, []byte(venueCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := store.LoadVenues(ctx, venues)
	if err != nil || loaded != 2 {
		t.Fatalf("expected 2 venues, got %d (%v)", loaded, err)
	}
	bkr, err := store.VenueByCode(ctx, "BKR")
	if err != nil {
		t.Fatalf("venue: %v", err)
	}
	if bkr.League().District != "North" || bkr.League().City() != "Poulsbo" || bkr.URL != "https://brasskraken.com" {
		t.Fatalf("unexpected venue %+v", bkr)
	}
	bbc, _ := store.VenueByCode(ctx, "BBC")
	if bbc.League().City() != "Bainbridge" || bbc.League().Time.Short() != "6:30pm" {
		t.Fatalf("unexpected venue %+v", bbc.League())
	}

	clues := filepath.Join(dir, "clues.csv")
	clueCSV := "date,title,url\n2026-10-14,National Dessert Day,https://nationaltoday.com/\n10/15/26,Grouch Day,\n"
	if err := os.WriteFile(clues, []byte(clueCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if loaded, err := store.LoadClues(ctx, clues); err != nil || loaded != 2 {
		t.Fatalf("expected 2 clues, got %d (%v)", loaded, err)
	}
	today := mustDate(t, "2026-10-14")
	if clue, ok, _ := store.ClueFor(ctx, mustDate(t, "2026-10-15"), today, 7); !ok || clue.Title != "Grouch Day" {
		t.Fatalf("expected short-date clue, got %+v", clue)
	}
}

func TestLoadEvents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pacific := time.FixedZone("PDT", -7*60*60)
	lead := 30 * 24 * time.Hour

	path := filepath.Join(t.TempDir(), "events.csv")
	eventCSV := "title,starts_at,location,description,background_image,background_image_narrow\n" +
		"Star Wars Trivia,2026-11-04 19:00,The Brass Kraken\\n18830 Front St NE,Costumes encouraged.,/static/sw.jpg,\n"
	if err := os.WriteFile(path, []byte(eventCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if loaded, err := store.LoadEvents(ctx, path, pacific, lead); err != nil || loaded != 1 {
		t.Fatalf("expected 1 event, got %d (%v)", loaded, err)
	}
	if loaded, err := store.LoadEvents(ctx, path, pacific, lead); err != nil || loaded != 1 {
		t.Fatalf("expected reload to update 1 event, got %d (%v)", loaded, err)
	}

	var events []Event
	store.DB().Find(&events)
	if len(events) != 1 {
		t.Fatalf("expected reloading to update in place, got %d events", len(events))
	}
	event, err := store.EventByID(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("event: %v", err)
	}
	start := time.Date(2026, 11, 4, 19, 0, 0, 0, pacific)
	if !event.StartsAt.Equal(start) || event.Location != "The Brass Kraken\n18830 Front St NE" || event.BackgroundImage != "/static/sw.jpg" {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Announcement == nil || !event.Announcement.DisplayStart.Equal(start.Add(-lead)) {
		t.Fatalf("expected an announcement opening %s before the event, got %+v", lead, event.Announcement)
	}
	var announcements int64
	store.DB().Model(&Announcement{}).Count(&announcements)
	if announcements != 1 {
		t.Fatalf("expected one announcement, got %d", announcements)
	}

	bad := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(bad, []byte("title,starts_at,location,description\nQuiz,11/04/26,Somewhere,Fun\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.LoadEvents(ctx, bad, pacific, lead); err == nil {
		t.Fatalf("expected an invalid start to be rejected")
	}
}

func TestPageContentAndSubmissions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.PageContent(ctx, "about_us"); err != nil || ok {
		t.Fatalf("expected no content yet, got %v %v", ok, err)
	}
	if err := store.SetPageContent(ctx, "about_us", "First"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetPageContent(ctx, "about_us", "Second"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	if text, ok, _ := store.PageContent(ctx, "about_us"); !ok || text != "Second" {
		t.Fatalf("unexpected content %q", text)
	}

	if err := store.RecordSubmission(ctx, "question", map[string]string{"name": "Ada"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	rows, err := store.Submissions(ctx, "question")
	if err != nil || len(rows) != 1 || string(rows[0].Payload) != `{"name":"Ada"}` {
		t.Fatalf("unexpected submissions %+v %v", rows, err)
	}
}
