package db

import (
	"time"

	"gorm.io/datatypes"
)

type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Username  string    `gorm:"size:64"`
	Flash     string    `gorm:"size:280"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StaffUser struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:128;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// Submission keeps every accepted contact or application form.
type Submission struct {
	ID        uint           `gorm:"primaryKey"`
	Kind      string         `gorm:"size:32;index;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
