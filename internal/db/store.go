package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"triviatime/internal/league"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrUnknownVenue         = errors.New("unknown venue")
	ErrUnknownDistrict      = errors.New("unknown pennant district")
	ErrVenueOutsideDistrict = errors.New("venue is not in the district")
	ErrVenueInUse           = errors.New("venue has check-ins or discounts")
	ErrInvalidLogin         = errors.New("invalid login")
)

// Store is the league's persistence layer. All reads compute from fresh rows;
// nothing is cached between calls.
type Store struct {
	db *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{db: conn}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(league.Date(t))
}

func fromDate(d datatypes.Date) time.Time {
	return league.Date(time.Time(d))
}

func datePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}

// ClockTime converts an hour and minute into the stored venue start time.
func ClockTime(hour, minute int) datatypes.Time {
	return datatypes.NewTime(hour, minute, 0, 0)
}

func gameTime(t datatypes.Time) league.GameTime {
	d := time.Duration(t)
	return league.GameTime{Hour: int(d / time.Hour), Minute: int(d % time.Hour / time.Minute)}
}

func (h *Hold) League() *league.Hold {
	if h == nil {
		return nil
	}
	hold := &league.Hold{Start: fromDate(h.Start), Message: h.Message}
	if h.End != nil {
		end := fromDate(*h.End)
		hold.End = &end
	}
	return hold
}

// League converts a loaded venue (with Hold and PennantDistrict preloaded)
// into the form the league rules work with.
func (v Venue) League() league.Venue {
	lv := league.Venue{
		Code:       v.Code,
		Name:       v.Name,
		Address:    v.Address,
		Day:        v.Day,
		Time:       gameTime(v.Time),
		HasPennant: v.HasPennant,
		Hold:       v.Hold.League(),
	}
	if v.PennantDistrict != nil {
		lv.District = v.PennantDistrict.Name
	}
	return lv
}

func (c Clue) League() league.Clue {
	return league.Clue{Date: fromDate(c.Date), Title: c.Title, URL: c.URL}
}

func (s *Store) venueQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Hold").Preload("PennantDistrict")
}

// Venues lists every venue by day of week, then start time, then name.
func (s *Store) Venues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	err := s.venueQuery(ctx).Order("day").Order("start_time").Order("name").Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

// VenuesPlaying lists the venues with a game on day: the venue's weekday
// matches and no hold covers the date. Ordered by start time, then name.
func (s *Store) VenuesPlaying(ctx context.Context, day time.Time) ([]Venue, error) {
	var venues []Venue
	err := s.venueQuery(ctx).
		Where("day = ?", league.Weekday(day)).
		Order("start_time").Order("name").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("list venues for %s: %w", day.Format("2006-01-02"), err)
	}
	playing := venues[:0]
	for _, v := range venues {
		if v.Hold.League().ActiveOn(day) {
			continue
		}
		playing = append(playing, v)
	}
	return playing, nil
}

func (s *Store) VenueByCode(ctx context.Context, code string) (Venue, error) {
	var venue Venue
	err := s.venueQuery(ctx).Where("code = ?", code).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Venue{}, ErrUnknownVenue
	}
	if err != nil {
		return Venue{}, fmt.Errorf("find venue %s: %w", code, err)
	}
	return venue, nil
}

// SaveVenue creates or updates a venue by code. A venue in a district always
// has a standings row.
func (s *Store) SaveVenue(ctx context.Context, venue *Venue) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Venue
		err := tx.Where("code = ?", venue.Code).First(&existing).Error
		switch {
		case err == nil:
			venue.ID = existing.ID
			venue.CreatedAt = existing.CreatedAt
			venue.HasPennant = existing.HasPennant && sameDistrict(existing.PennantDistrictID, venue.PennantDistrictID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
			return fmt.Errorf("save venue %s: %w", venue.Code, err)
		}
		if venue.PennantDistrictID == nil {
			return nil
		}
		standings := PennantStandings{VenueID: venue.ID}
		return tx.Where(PennantStandings{VenueID: venue.ID}).FirstOrCreate(&standings).Error
	})
}

func sameDistrict(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DeleteVenue removes a venue unless check-ins or discounts still reference it.
func (s *Store) DeleteVenue(ctx context.Context, code string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue Venue
		if err := tx.Where("code = ?", code).First(&venue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownVenue
			}
			return err
		}
		var checkIns, discounts int64
		if err := tx.Model(&CheckIn{}).Where("venue_id = ?", venue.ID).Count(&checkIns).Error; err != nil {
			return err
		}
		if err := tx.Model(&VenueDiscount{}).Where("venue_id = ?", venue.ID).Count(&discounts).Error; err != nil {
			return err
		}
		if checkIns > 0 || discounts > 0 {
			return ErrVenueInUse
		}
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&Hold{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&PennantStandings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
}

// SetHold replaces the venue's hold.
func (s *Store) SetHold(ctx context.Context, code string, hold league.Hold) error {
	venue, err := s.VenueByCode(ctx, code)
	if err != nil {
		return err
	}
	row := Hold{
		VenueID: venue.ID,
		Start:   toDate(hold.Start),
		End:     datePtr(hold.End),
		Message: hold.Message,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_date", "end_date", "message"}),
	}).Create(&row).Error
}

func (s *Store) ClearHold(ctx context.Context, code string) error {
	venue, err := s.VenueByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("venue_id = ?", venue.ID).Delete(&Hold{}).Error
}

// ClueFor returns the clue dated day. Clues past the retention window are
// treated as absent even if the sweep has not removed them yet.
func (s *Store) ClueFor(ctx context.Context, day, today time.Time, retentionDays int) (Clue, bool, error) {
	if league.ClueExpired(day, today, retentionDays) {
		return Clue{}, false, nil
	}
	var clue Clue
	err := s.db.WithContext(ctx).Where("date = ?", toDate(day)).First(&clue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Clue{}, false, nil
	}
	if err != nil {
		return Clue{}, false, fmt.Errorf("find clue: %w", err)
	}
	return clue, true, nil
}

// SaveClue upserts the clue for its date.
func (s *Store) SaveClue(ctx context.Context, clue *Clue) error {
	clue.Date = toDate(time.Time(clue.Date))
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "url"}),
	}).Create(clue).Error
}
