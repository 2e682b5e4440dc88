package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"triviatime/internal/config"
	"triviatime/internal/db"
	"triviatime/internal/league"
)

func main() {
	code := flag.String("venue", "", "three letter venue code")
	start := flag.String("start", "", "first day off, YYYY-MM-DD or MM/DD/YY (default today)")
	end := flag.String("end", "", "last day off; leave empty for an open-ended hold")
	message := flag.String("message", "", "note shown on the venues page")
	clearHold := flag.Bool("clear", false, "remove the venue's hold instead of setting one")
	flag.Parse()

	venue := strings.ToUpper(strings.TrimSpace(*code))
	if venue == "" {
		log.Fatal("venue code is required")
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	store := db.NewStore(conn)
	ctx := context.Background()

	if *clearHold {
		if err := store.ClearHold(ctx, venue); err != nil {
			log.Fatalf("failed to clear hold for %s: %v", venue, err)
		}
		log.Printf("cleared hold for %s", venue)
		return
	}

	hold := league.Hold{Start: league.Today(time.Now(), cfg.Location()), Message: *message}
	if *start != "" {
		if hold.Start, err = league.ParseDate(*start); err != nil {
			log.Fatalf("invalid start: %v", err)
		}
	}
	if *end != "" {
		last, err := league.ParseDate(*end)
		if err != nil {
			log.Fatalf("invalid end: %v", err)
		}
		if last.Before(hold.Start) {
			log.Fatal("end must not be before start")
		}
		hold.End = &last
	}
	if err := store.SetHold(ctx, venue, hold); err != nil {
		log.Fatalf("failed to hold %s: %v", venue, err)
	}
	log.Printf("held %s from %s", venue, hold.Start.Format("2006-01-02"))
}
