package db

import "time"

// Event is a special one-off game. Saving it maintains its Announcement.
type Event struct {
	ID                    uint      `gorm:"primaryKey"`
	Title                 string    `gorm:"size:128;not null"`
	StartsAt              time.Time `gorm:"not null"`
	Location              string    `gorm:"type:text;not null"`
	Description           string    `gorm:"type:text;not null"`
	BackgroundImage       string    `gorm:"size:256"`
	BackgroundImageNarrow string    `gorm:"size:256"`
	Announcement          *Announcement
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

type Announcement struct {
	ID           uint      `gorm:"primaryKey"`
	EventID      *uint     `gorm:"uniqueIndex"`
	Title        string    `gorm:"size:128;not null"`
	Description  string    `gorm:"type:text;not null"`
	URL          string    `gorm:"size:256"`
	ImageURL     string    `gorm:"size:256"`
	DisplayStart time.Time `gorm:"index;not null"`
	DisplayEnd   *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
