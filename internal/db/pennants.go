package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"triviatime/internal/league"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PennantHolder is one district with its pennant and current holder. Holder
// is nil while nobody holds the pennant.
type PennantHolder struct {
	District PennantDistrict
	Pennant  league.Pennant
	Holder   *Venue
}

func (p Pennant) League(district string) league.Pennant {
	lp := league.Pennant{District: district}
	if p.NextGame != nil {
		lp.NextGame = fromDate(*p.NextGame)
	}
	return lp
}

func (s *Store) Districts(ctx context.Context) ([]PennantDistrict, error) {
	var districts []PennantDistrict
	if err := s.db.WithContext(ctx).Preload("Pennant").Order("name").Find(&districts).Error; err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	return districts, nil
}

func (s *Store) DistrictByName(ctx context.Context, name string) (PennantDistrict, error) {
	var district PennantDistrict
	err := s.db.WithContext(ctx).Preload("Pennant").Where("name = ?", name).First(&district).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PennantDistrict{}, ErrUnknownDistrict
	}
	if err != nil {
		return PennantDistrict{}, fmt.Errorf("find district %s: %w", name, err)
	}
	return district, nil
}

// EnsureDistrict returns the named district, creating it and its pennant
// when missing.
func (s *Store) EnsureDistrict(ctx context.Context, name string) (PennantDistrict, error) {
	var district PennantDistrict
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(PennantDistrict{Name: name}).FirstOrCreate(&district).Error; err != nil {
			return err
		}
		pennant := Pennant{DistrictID: district.ID}
		if err := tx.Where(Pennant{DistrictID: district.ID}).FirstOrCreate(&pennant).Error; err != nil {
			return err
		}
		district.Pennant = &pennant
		return nil
	})
	if err != nil {
		return PennantDistrict{}, fmt.Errorf("ensure district %s: %w", name, err)
	}
	return district, nil
}

// PennantHolders lists every district in name order with its holder.
func (s *Store) PennantHolders(ctx context.Context) ([]PennantHolder, error) {
	districts, err := s.Districts(ctx)
	if err != nil {
		return nil, err
	}
	var holders []Venue
	if err := s.venueQuery(ctx).Where("has_pennant = ?", true).Find(&holders).Error; err != nil {
		return nil, fmt.Errorf("list pennant holders: %w", err)
	}
	byDistrict := make(map[uint]*Venue, len(holders))
	for i := range holders {
		if holders[i].PennantDistrictID != nil {
			byDistrict[*holders[i].PennantDistrictID] = &holders[i]
		}
	}
	result := make([]PennantHolder, 0, len(districts))
	for _, district := range districts {
		entry := PennantHolder{District: district, Pennant: league.Pennant{District: district.Name}}
		if district.Pennant != nil {
			entry.Pennant = district.Pennant.League(district.Name)
		}
		entry.Holder = byDistrict[district.ID]
		result = append(result, entry)
	}
	return result, nil
}

// PennantAnnouncements builds one "next pennant game" announcement per
// district that has a holder. Nothing is written back.
func (s *Store) PennantAnnouncements(ctx context.Context, today time.Time) ([]league.Announcement, error) {
	holders, err := s.PennantHolders(ctx)
	if err != nil {
		return nil, err
	}
	var announcements []league.Announcement
	for _, h := range holders {
		if h.Holder == nil {
			continue
		}
		announcements = append(announcements, league.PennantAnnouncement(h.Pennant, h.Holder.League(), today))
	}
	return announcements, nil
}

// MovePennant hands the district's pennant to the venue with code and
// schedules the next pennant game there. Every other venue in the district
// loses the pennant in the same transaction. It returns the scheduled date.
func (s *Store) MovePennant(ctx context.Context, districtName, code string, today time.Time) (time.Time, error) {
	var next time.Time
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var district PennantDistrict
		if err := tx.Where("name = ?", districtName).First(&district).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownDistrict
			}
			return err
		}
		var venue Venue
		if err := tx.Preload("Hold").Where("code = ?", code).First(&venue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownVenue
			}
			return err
		}
		if venue.PennantDistrictID == nil || *venue.PennantDistrictID != district.ID {
			return ErrVenueOutsideDistrict
		}
		venue.PennantDistrict = &district

		pennant := Pennant{DistrictID: district.ID}
		if err := tx.Where(Pennant{DistrictID: district.ID}).FirstOrCreate(&pennant).Error; err != nil {
			return err
		}
		// Scheduled before the venue is flagged as holder; the staff form's date replaces it.
		next = league.NextPennantGame(venue.League(), pennant.League(district.Name), today)

		if err := tx.Model(&Venue{}).
			Where("pennant_district_id = ? AND id <> ? AND has_pennant = ?", district.ID, venue.ID, true).
			Update("has_pennant", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&Venue{}).Where("id = ?", venue.ID).Update("has_pennant", true).Error; err != nil {
			return err
		}
		nextGame := toDate(next)
		return tx.Model(&Pennant{}).Where("id = ?", pennant.ID).Update("next_game", &nextGame).Error
	})
	if err != nil {
		return time.Time{}, err
	}
	return next, nil
}

// SetNextPennantGame overrides the district's scheduled pennant game.
func (s *Store) SetNextPennantGame(ctx context.Context, districtName string, day time.Time) error {
	district, err := s.DistrictByName(ctx, districtName)
	if err != nil {
		return err
	}
	nextGame := toDate(day)
	return s.db.WithContext(ctx).Model(&Pennant{}).
		Where("district_id = ?", district.ID).
		Update("next_game", &nextGame).Error
}

// UpdateStandings overwrites a district venue's pennant counters.
func (s *Store) UpdateStandings(ctx context.Context, code string, win, defend, place int) error {
	var venue Venue
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && venue.PennantDistrictID == nil) {
		return ErrUnknownVenue
	}
	if err != nil {
		return err
	}
	row := PennantStandings{VenueID: venue.ID, Win: win, Defend: defend, Place: place}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"win", "defend", "place"}),
	}).Create(&row).Error
}

// PennantStandings lists every district venue's counters, grouped by
// district and ordered by total points.
func (s *Store) PennantStandings(ctx context.Context) ([]league.VenueStanding, error) {
	var venues []Venue
	err := s.db.WithContext(ctx).
		Preload("PennantDistrict").Preload("Standings").
		Where("pennant_district_id IS NOT NULL").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("list pennant standings: %w", err)
	}
	standings := make([]league.VenueStanding, 0, len(venues))
	for _, v := range venues {
		entry := league.VenueStanding{Code: v.Code, Venue: v.Name}
		if v.PennantDistrict != nil {
			entry.District = v.PennantDistrict.Name
		}
		if v.Standings != nil {
			entry.Win = v.Standings.Win
			entry.Defend = v.Standings.Defend
			entry.Place = v.Standings.Place
		}
		standings = append(standings, entry)
	}
	league.SortPennantStandings(standings)
	return standings, nil
}
