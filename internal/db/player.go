package db

import (
	"time"

	"gorm.io/datatypes"
)

// Player is a league member. PID is the number printed on their card and is
// assigned by staff, independent of ID.
type Player struct {
	ID        uint      `gorm:"primaryKey"`
	PID       int       `gorm:"column:pid;uniqueIndex;not null"`
	Name      string    `gorm:"size:128;not null"`
	Phone     string    `gorm:"size:32"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	CheckIns  []CheckIn
}

// YearJoined is the calendar year, in loc, the player was created.
func (p Player) YearJoined(loc *time.Location) int {
	return p.CreatedAt.In(loc).Year()
}

type CheckIn struct {
	ID        uint           `gorm:"primaryKey"`
	PlayerID  uint           `gorm:"index;not null"`
	Player    Player         `gorm:"constraint:OnDelete:RESTRICT"`
	VenueID   uint           `gorm:"index;not null"`
	Venue     Venue          `gorm:"constraint:OnDelete:RESTRICT"`
	Date      datatypes.Date `gorm:"index;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
