package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"triviatime/internal/league"
)

// LoadVenues reads venues from a CSV with the header
// code,name,day,time,address,district,url and upserts them by code.
// Districts named in the file are created as needed.
func (s *Store) LoadVenues(ctx context.Context, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for i, row := range rows {
		venue, district, err := parseVenueRow(row)
		if err != nil {
			return loaded, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		if district != "" {
			d, err := s.EnsureDistrict(ctx, district)
			if err != nil {
				return loaded, err
			}
			venue.PennantDistrictID = &d.ID
		}
		if err := s.SaveVenue(ctx, &venue); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

func parseVenueRow(row []string) (Venue, string, error) {
	if len(row) < 5 {
		return Venue{}, "", fmt.Errorf("expected at least 5 columns, got %d", len(row))
	}
	code := strings.ToUpper(strings.TrimSpace(row[0]))
	if len(code) != 3 {
		return Venue{}, "", fmt.Errorf("venue code %q must be 3 letters", code)
	}
	day, err := parseDay(row[2])
	if err != nil {
		return Venue{}, "", err
	}
	hour, minute, err := parseClock(row[3])
	if err != nil {
		return Venue{}, "", err
	}
	venue := Venue{
		Code:    code,
		Name:    strings.TrimSpace(row[1]),
		Day:     day,
		Time:    ClockTime(hour, minute),
		Address: strings.TrimSpace(strings.ReplaceAll(row[4], `\n`, "\n")),
	}
	district := ""
	if len(row) > 5 {
		district = strings.TrimSpace(row[5])
	}
	if len(row) > 6 {
		venue.URL = strings.TrimSpace(row[6])
	}
	return venue, district, nil
}

func parseDay(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n <= 6 {
		return n, nil
	}
	if day, ok := league.ParseWeekday(raw); ok {
		return day, nil
	}
	return 0, fmt.Errorf("unknown day %q", raw)
}

// parseClock accepts "19:00", "7pm" and "6:30pm".
func parseClock(raw string) (int, int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, layout := range []string{"15:04", "3pm", "3:04pm"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("unknown time %q", raw)
}

// LoadClues reads date,title,url rows and upserts one clue per date. Dates
// may be YYYY-MM-DD or MM/DD/YY.
func (s *Store) LoadClues(ctx context.Context, path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		day, err := league.ParseDate(row[0])
		if err != nil {
			return loaded, fmt.Errorf("%s line %d: invalid date %q", path, i+2, row[0])
		}
		title := strings.TrimSpace(row[1])
		if title == "" {
			continue
		}
		clue := Clue{Date: toDate(day), Title: title}
		if len(row) > 2 {
			clue.URL = strings.TrimSpace(row[2])
		}
		if err := s.SaveClue(ctx, &clue); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// LoadEvents reads title,starts_at,location,description,background_image,
// background_image_narrow rows. starts_at is "2006-01-02 15:04" in loc. A row
// with the title and start of a stored event updates it. Every saved event
// gets an announcement that opens lead before the event.
func (s *Store) LoadEvents(ctx context.Context, path string, loc *time.Location, lead time.Duration) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for i, row := range rows {
		parsed, err := parseEventRow(row, loc)
		if err != nil {
			return loaded, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		event, err := s.eventAt(ctx, parsed.Title, parsed.StartsAt)
		if err != nil {
			return loaded, err
		}
		event.Title = parsed.Title
		event.StartsAt = parsed.StartsAt
		event.Location = parsed.Location
		event.Description = parsed.Description
		event.BackgroundImage = parsed.BackgroundImage
		event.BackgroundImageNarrow = parsed.BackgroundImageNarrow
		if err := s.SaveEvent(ctx, &event, lead); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

func parseEventRow(row []string, loc *time.Location) (Event, error) {
	if len(row) < 4 {
		return Event{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}
	title := strings.TrimSpace(row[0])
	if title == "" {
		return Event{}, errors.New("event title is required")
	}
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(row[1]), loc)
	if err != nil {
		return Event{}, fmt.Errorf("invalid start %q", row[1])
	}
	event := Event{
		Title:       title,
		StartsAt:    startsAt,
		Location:    strings.TrimSpace(strings.ReplaceAll(row[2], `\n`, "\n")),
		Description: strings.TrimSpace(strings.ReplaceAll(row[3], `\n`, "\n")),
	}
	if len(row) > 4 {
		event.BackgroundImage = strings.TrimSpace(row[4])
	}
	if len(row) > 5 {
		event.BackgroundImageNarrow = strings.TrimSpace(row[5])
	}
	return event, nil
}

// eventAt finds the stored event with title starting at startsAt, or returns
// an empty event.
func (s *Store) eventAt(ctx context.Context, title string, startsAt time.Time) (Event, error) {
	var candidates []Event
	if err := s.db.WithContext(ctx).Where("title = ?", title).Find(&candidates).Error; err != nil {
		return Event{}, fmt.Errorf("find event %q: %w", title, err)
	}
	for _, e := range candidates {
		if e.StartsAt.Equal(startsAt) {
			return e, nil
		}
	}
	return Event{}, nil
}

// readCSV returns the data rows of a CSV file, skipping the header and
// blank lines.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseCSV(file)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	var records [][]string
	for _, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		records = append(records, row)
	}
	return records, nil
}
