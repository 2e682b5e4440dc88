package db

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"triviatime/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database named by cfg.DatabaseURL. Postgres URLs use
// the postgres driver; "sqlite:" and "file:" URLs use the pure Go SQLite
// driver, which also backs the tests.
func Open(cfg config.Config) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	dialector, sqliteDSN := dialectorFor(dsn)
	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if sqliteDSN {
		// SQLite serializes writers; one connection keeps in-memory databases shared.
		sqlDB.SetMaxOpenConns(1)
		return conn, nil
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	}
	if cfg.DBConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
	}
	return conn, nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), true
	case strings.HasPrefix(dsn, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite:")), true
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), true
	default:
		return postgres.Open(dsn), false
	}
}

// holderIndexSQL allows at most one pennant holder per district.
const holderIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_venues_district_holder
ON venues (pennant_district_id) WHERE has_pennant`

// Migrate runs GORM auto-migrations for every table. Production databases
// are migrated with cmd/migrate; this keeps SQLite and tests in step.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&PennantDistrict{},
		&Pennant{},
		&Venue{},
		&Hold{},
		&PennantStandings{},
		&Clue{},
		&Player{},
		&CheckIn{},
		&Event{},
		&Announcement{},
		&VenueDiscount{},
		&ExtraDiscount{},
		&PageContent{},
		&StaffUser{},
		&Session{},
		&Submission{},
	); err != nil {
		return err
	}
	if err := conn.Exec(holderIndexSQL).Error; err != nil {
		return fmt.Errorf("pennant holder index: %w", err)
	}
	log.Println("database migration complete")
	return nil
}
