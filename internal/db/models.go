package db

import (
	"time"

	"gorm.io/datatypes"
)

type PennantDistrict struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	Pennant   *Pennant  `gorm:"foreignKey:DistrictID"`
	Venues    []Venue
}

type Pennant struct {
	ID         uint            `gorm:"primaryKey"`
	DistrictID uint            `gorm:"uniqueIndex;not null"`
	NextGame   *datatypes.Date `gorm:"column:next_game"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

type Venue struct {
	ID                uint           `gorm:"primaryKey"`
	Code              string         `gorm:"size:3;uniqueIndex;not null"`
	Name              string         `gorm:"size:128;not null"`
	Day               int            `gorm:"not null"`
	Time              datatypes.Time `gorm:"column:start_time;not null"`
	Address           string         `gorm:"type:text;not null"`
	URL               string         `gorm:"size:256"`
	PennantDistrictID *uint          `gorm:"index"`
	PennantDistrict   *PennantDistrict
	HasPennant        bool              `gorm:"not null;default:false"`
	Hold              *Hold             `gorm:"constraint:OnDelete:CASCADE"`
	Standings         *PennantStandings `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time         `gorm:"not null"`
	UpdatedAt         time.Time         `gorm:"not null"`
}

type Hold struct {
	ID        uint            `gorm:"primaryKey"`
	VenueID   uint            `gorm:"uniqueIndex;not null"`
	Start     datatypes.Date  `gorm:"column:start_date;not null"`
	End       *datatypes.Date `gorm:"column:end_date"`
	Message   string          `gorm:"size:256"`
	CreatedAt time.Time       `gorm:"not null"`
}

type PennantStandings struct {
	ID      uint `gorm:"primaryKey"`
	VenueID uint `gorm:"uniqueIndex;not null"`
	Win     int  `gorm:"not null;default:0"`
	Defend  int  `gorm:"not null;default:0"`
	Place   int  `gorm:"not null;default:0"`
}

func (PennantStandings) TableName() string {
	return "pennant_standings"
}

type Clue struct {
	ID        uint           `gorm:"primaryKey"`
	Date      datatypes.Date `gorm:"uniqueIndex;not null"`
	Title     string         `gorm:"size:256;not null"`
	URL       string         `gorm:"size:512"`
	CreatedAt time.Time      `gorm:"not null"`
}

type VenueDiscount struct {
	ID          uint   `gorm:"primaryKey"`
	VenueID     uint   `gorm:"index;not null"`
	Venue       Venue  `gorm:"constraint:OnDelete:RESTRICT"`
	Description string `gorm:"type:text;not null"`
}

type ExtraDiscount struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"type:text;not null"`
}

type PageContent struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:64;uniqueIndex;not null"`
	Content   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (PageContent) TableName() string {
	return "page_content"
}
