package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"triviatime/internal/league"
)

type SweepResult struct {
	Clues    int
	Holds    int
	Sessions int
}

// Sweep deletes clues past the retention window, holds that have ended and
// expired sessions. Reads already ignore these rows; the sweep only reclaims
// them.
func (s *Store) Sweep(ctx context.Context, now time.Time, today time.Time, retentionDays int) (SweepResult, error) {
	var result SweepResult
	conn := s.db.WithContext(ctx)

	var clues []Clue
	if err := conn.Find(&clues).Error; err != nil {
		return result, fmt.Errorf("list clues: %w", err)
	}
	var staleClues []uint
	for _, clue := range clues {
		if league.ClueExpired(fromDate(clue.Date), today, retentionDays) {
			staleClues = append(staleClues, clue.ID)
		}
	}
	if len(staleClues) > 0 {
		if err := conn.Delete(&Clue{}, staleClues).Error; err != nil {
			return result, fmt.Errorf("delete clues: %w", err)
		}
	}
	result.Clues = len(staleClues)

	var holds []Hold
	if err := conn.Find(&holds).Error; err != nil {
		return result, fmt.Errorf("list holds: %w", err)
	}
	var endedHolds []uint
	for _, hold := range holds {
		if hold.League().Expired(today) {
			endedHolds = append(endedHolds, hold.ID)
		}
	}
	if len(endedHolds) > 0 {
		if err := conn.Delete(&Hold{}, endedHolds).Error; err != nil {
			return result, fmt.Errorf("delete holds: %w", err)
		}
	}
	result.Holds = len(endedHolds)

	var sessions []Session
	if err := conn.Select("id", "expires_at").Find(&sessions).Error; err != nil {
		return result, fmt.Errorf("list sessions: %w", err)
	}
	var expired []string
	for _, session := range sessions {
		if !session.ExpiresAt.After(now) {
			expired = append(expired, session.ID)
		}
	}
	if len(expired) > 0 {
		if err := conn.Where("id IN ?", expired).Delete(&Session{}).Error; err != nil {
			return result, fmt.Errorf("delete sessions: %w", err)
		}
	}
	result.Sessions = len(expired)

	log.Printf("sweep complete clues=%d holds=%d sessions=%d", result.Clues, result.Holds, result.Sessions)
	return result, nil
}
