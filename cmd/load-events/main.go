package main

import (
	"context"
	"flag"
	"log"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/db"
)

func main() {
	filePath := flag.String("file", "events.csv", "path to events csv (title,starts_at,location,description,background_image,background_image_narrow)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	lead := time.Duration(cfg.AnnouncementLeadDays) * 24 * time.Hour
	loaded, err := db.NewStore(conn).LoadEvents(context.Background(), *filePath, cfg.Location(), lead)
	if err != nil {
		log.Fatalf("failed to load events after %d rows: %v", loaded, err)
	}
	log.Printf("loaded %d events (announcements open %d days ahead)", loaded, cfg.AnnouncementLeadDays)
}
