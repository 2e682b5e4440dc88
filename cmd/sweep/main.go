package main

import (
	"context"
	"log"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/db"
	"triviatime/internal/league"
)

// sweep is meant to run from cron once a day.
func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	now := time.Now()
	today := league.Today(now, cfg.Location())
	if _, err := db.NewStore(conn).Sweep(context.Background(), now, today, cfg.ClueRetentionDays); err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
}
