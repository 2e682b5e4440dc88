package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"triviatime/internal/league"

	"gorm.io/gorm"
)

// txRoster answers intake lookups inside the recording transaction.
type txRoster struct {
	ctx context.Context
	tx  *gorm.DB
}

func (r txRoster) HasVenue(code string) (bool, error) {
	var count int64
	if err := r.tx.WithContext(r.ctx).Model(&Venue{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r txRoster) PlayerName(pid int) (string, bool, error) {
	var player Player
	err := r.tx.WithContext(r.ctx).Where("pid = ?", pid).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return player.Name, true, nil
}

// RecordCheckIns validates batch and stores one check-in per listed player,
// creating new players first. Either the whole batch is stored or nothing
// is. Rejections are returned as *league.IntakeError.
func (s *Store) RecordCheckIns(ctx context.Context, batch league.CheckInBatch) (league.CheckInPlan, error) {
	var plan league.CheckInPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = league.PlanCheckIns(batch, txRoster{ctx: ctx, tx: tx})
		if err != nil {
			return err
		}
		var venue Venue
		if err := tx.Where("code = ?", plan.Venue).First(&venue).Error; err != nil {
			return fmt.Errorf("load venue %s: %w", plan.Venue, err)
		}
		date := toDate(plan.Date)

		ids, err := playerIDs(tx, plan.Existing)
		if err != nil {
			return err
		}
		checkIns := make([]CheckIn, 0, len(plan.Existing)+len(plan.New))
		for _, pid := range plan.Existing {
			checkIns = append(checkIns, CheckIn{PlayerID: ids[pid], VenueID: venue.ID, Date: date})
		}
		for _, fresh := range plan.New {
			player := Player{PID: fresh.PID, Name: fresh.Name}
			if err := tx.Create(&player).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return &league.IntakeError{Message: fmt.Sprintf("#%d already exists... someone else just added them, please submit again", fresh.PID)}
				}
				return fmt.Errorf("create player %d: %w", fresh.PID, err)
			}
			checkIns = append(checkIns, CheckIn{PlayerID: player.ID, VenueID: venue.ID, Date: date})
		}
		if len(checkIns) == 0 {
			return nil
		}
		if err := tx.Omit("Player", "Venue").Create(&checkIns).Error; err != nil {
			return fmt.Errorf("create check-ins: %w", err)
		}
		return nil
	})
	if err != nil {
		return league.CheckInPlan{}, err
	}
	log.Printf("check-ins recorded venue=%s date=%s existing=%d new=%d",
		plan.Venue, plan.Date.Format("2006-01-02"), len(plan.Existing), len(plan.New))
	return plan, nil
}

func playerIDs(tx *gorm.DB, pids []int) (map[int]uint, error) {
	ids := make(map[int]uint, len(pids))
	if len(pids) == 0 {
		return ids, nil
	}
	var players []Player
	if err := tx.Where("pid IN ?", pids).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	for _, p := range players {
		ids[p.PID] = p.ID
	}
	return ids, nil
}

func (s *Store) PlayerByPID(ctx context.Context, pid int) (Player, error) {
	var player Player
	err := s.db.WithContext(ctx).Where("pid = ?", pid).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Player{}, ErrNotFound
	}
	if err != nil {
		return Player{}, fmt.Errorf("find player %d: %w", pid, err)
	}
	return player, nil
}

// SavePlayer creates a player, or renames the one holding the same pid.
func (s *Store) SavePlayer(ctx context.Context, player *Player) error {
	existing, err := s.PlayerByPID(ctx, player.PID)
	switch {
	case err == nil:
		player.ID = existing.ID
		player.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrNotFound):
		return err
	}
	return s.db.WithContext(ctx).Omit("CheckIns").Save(player).Error
}

type checkInVenue struct {
	PlayerID uint
	VenueID  uint
}

// PlayerPoints scores one player over all of their check-ins.
func (s *Store) PlayerPoints(ctx context.Context, pid int) (int, error) {
	player, err := s.PlayerByPID(ctx, pid)
	if err != nil {
		return 0, err
	}
	scores, err := s.points(ctx, []uint{player.ID})
	if err != nil {
		return 0, err
	}
	return scores[player.ID], nil
}

func (s *Store) points(ctx context.Context, ids []uint) (map[uint]int, error) {
	var rows []checkInVenue
	err := s.db.WithContext(ctx).Model(&CheckIn{}).
		Select("player_id, venue_id").
		Where("player_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}
	visits := make(map[uint][]uint, len(ids))
	for _, row := range rows {
		visits[row.PlayerID] = append(visits[row.PlayerID], row.VenueID)
	}
	scores := make(map[uint]int, len(ids))
	for _, id := range ids {
		scores[id] = league.Points(visits[id])
	}
	return scores, nil
}

// PlayerStandings ranks the players who joined in year, counted in loc.
func (s *Store) PlayerStandings(ctx context.Context, year int, loc *time.Location) ([]league.RankedPlayer, error) {
	var all []Player
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	players := all[:0]
	for _, p := range all {
		if p.YearJoined(loc) == year {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil, nil
	}
	ids := make([]uint, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	scores, err := s.points(ctx, ids)
	if err != nil {
		return nil, err
	}
	entries := make([]league.PlayerScore, len(players))
	for i, p := range players {
		entries[i] = league.PlayerScore{PID: p.PID, Name: p.Name, YearJoined: year, Points: scores[p.ID]}
	}
	return league.RankPlayers(entries), nil
}

func (s *Store) CountVenueCheckIns(ctx context.Context, code string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&CheckIn{}).
		Joins("JOIN venues ON venues.id = check_ins.venue_id").
		Where("venues.code = ?", code).
		Count(&count).Error
	return count, err
}

func (s *Store) CountPlayers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Player{}).Count(&count).Error
	return count, err
}
