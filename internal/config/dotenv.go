package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                     string
	DatabaseURL              string
	Timezone                 string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	ClueRetentionDays        int
	AnnouncementLeadDays     int
	SMTPHost                 string
	SMTPPort                 int
	SMTPUsername             string
	SMTPPassword             string
	MailFrom                 string
	ContactEmail             string
	RedisURL                 string
	SessionTTLHours          int
	Env                      string
}

func Default() Config {
	return Config{
		Port:                     "8080",
		Timezone:                 "America/Los_Angeles",
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		ClueRetentionDays:        7,
		AnnouncementLeadDays:     60,
		SMTPPort:                 587,
		MailFrom:                 "website@triviatimelive.com",
		ContactEmail:             "info@triviatimelive.com",
		SessionTTLHours:          24 * 14,
		Env:                      "dev",
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.DatabaseURL = raw
	}
	if raw := os.Getenv("TIMEZONE"); raw != "" {
		cfg.Timezone = raw
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	if raw := os.Getenv("CLUE_RETENTION_DAYS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.ClueRetentionDays = value
		}
	}
	if raw := os.Getenv("ANNOUNCEMENT_LEAD_DAYS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.AnnouncementLeadDays = value
		}
	}
	if raw := os.Getenv("SMTP_HOST"); raw != "" {
		cfg.SMTPHost = raw
	}
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.SMTPPort = value
		}
	}
	if raw := os.Getenv("SMTP_USERNAME"); raw != "" {
		cfg.SMTPUsername = raw
	}
	if raw := os.Getenv("SMTP_PASSWORD"); raw != "" {
		cfg.SMTPPassword = raw
	}
	if raw := os.Getenv("MAIL_FROM"); raw != "" {
		cfg.MailFrom = raw
	}
	if raw := os.Getenv("CONTACT_EMAIL"); raw != "" {
		cfg.ContactEmail = raw
	}
	if raw := os.Getenv("REDIS_URL"); raw != "" {
		cfg.RedisURL = raw
	}
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.SessionTTLHours = value
		}
	}
	if raw := os.Getenv("ENV"); raw != "" {
		cfg.Env = raw
	}
	return cfg
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
