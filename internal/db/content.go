package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"triviatime/internal/league"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (a Announcement) League() league.Announcement {
	return league.Announcement{
		Title:        a.Title,
		Description:  a.Description,
		URL:          a.URL,
		ImageURL:     a.ImageURL,
		DisplayStart: a.DisplayStart,
		DisplayEnd:   a.DisplayEnd,
	}
}

// ActiveAnnouncements returns the stored announcements active at now,
// newest display start first.
func (s *Store) ActiveAnnouncements(ctx context.Context, now time.Time) ([]league.Announcement, error) {
	var rows []Announcement
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	slices.SortStableFunc(rows, func(a, b Announcement) int {
		return b.DisplayStart.Compare(a.DisplayStart)
	})
	all := make([]league.Announcement, len(rows))
	for i, row := range rows {
		all[i] = row.League()
	}
	return league.ActiveAnnouncements(all, now), nil
}

func (s *Store) SaveAnnouncement(ctx context.Context, announcement *Announcement) error {
	return s.db.WithContext(ctx).Save(announcement).Error
}

// SaveEvent stores the event and replaces its announcement, whose display
// window opens lead before the event starts.
func (s *Store) SaveEvent(ctx context.Context, event *Event, lead time.Duration) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Announcement").Save(event).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&Announcement{}).Error; err != nil {
			return err
		}
		generated := league.EventAnnouncement(event.Title, event.StartsAt, event.Location, EventPath(*event), lead)
		row := Announcement{
			EventID:      &event.ID,
			Title:        generated.Title,
			Description:  generated.Description,
			URL:          generated.URL,
			DisplayStart: generated.DisplayStart,
			DisplayEnd:   generated.DisplayEnd,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		event.Announcement = &row
		return nil
	})
	if err != nil {
		return fmt.Errorf("save event %q: %w", event.Title, err)
	}
	log.Printf("event saved event_id=%d title=%q", event.ID, event.Title)
	return nil
}

// EventPath is the site-relative link to an event page.
func EventPath(event Event) string {
	return fmt.Sprintf("events/%d/%s", event.ID, league.Slugify(event.Title))
}

func (s *Store) EventByID(ctx context.Context, id uint) (Event, error) {
	var event Event
	err := s.db.WithContext(ctx).Preload("Announcement").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, fmt.Errorf("find event %d: %w", id, err)
	}
	return event, nil
}

// Discounts lists venue discounts by venue name and the extra discounts by
// name.
func (s *Store) Discounts(ctx context.Context) ([]VenueDiscount, []ExtraDiscount, error) {
	var venueDiscounts []VenueDiscount
	if err := s.db.WithContext(ctx).Preload("Venue").Order("id").Find(&venueDiscounts).Error; err != nil {
		return nil, nil, fmt.Errorf("list venue discounts: %w", err)
	}
	slices.SortStableFunc(venueDiscounts, func(a, b VenueDiscount) int {
		return strings.Compare(a.Venue.Name, b.Venue.Name)
	})
	var extra []ExtraDiscount
	if err := s.db.WithContext(ctx).Order("name").Find(&extra).Error; err != nil {
		return nil, nil, fmt.Errorf("list extra discounts: %w", err)
	}
	return venueDiscounts, extra, nil
}

func (s *Store) AddVenueDiscount(ctx context.Context, code, description string) error {
	venue, err := s.VenueByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Omit("Venue").Create(&VenueDiscount{VenueID: venue.ID, Description: description}).Error
}

func (s *Store) AddExtraDiscount(ctx context.Context, name, description string) error {
	return s.db.WithContext(ctx).Create(&ExtraDiscount{Name: name, Description: description}).Error
}

// PageContent returns the stored text for a named page section.
func (s *Store) PageContent(ctx context.Context, name string) (string, bool, error) {
	var content PageContent
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find page content %s: %w", name, err)
	}
	return content.Content, true, nil
}

func (s *Store) SetPageContent(ctx context.Context, name, text string) error {
	row := PageContent{Name: name, Content: text}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&row).Error
}

// RecordSubmission keeps an accepted form as JSON.
func (s *Store) RecordSubmission(ctx context.Context, kind string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s submission: %w", kind, err)
	}
	row := Submission{Kind: kind, Payload: datatypes.JSON(raw)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record %s submission: %w", kind, err)
	}
	return nil
}

func (s *Store) Submissions(ctx context.Context, kind string) ([]Submission, error) {
	var rows []Submission
	err := s.db.WithContext(ctx).Where("kind = ?", kind).Order("id").Find(&rows).Error
	return rows, err
}
