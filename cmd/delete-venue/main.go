package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"triviatime/internal/config"
	"triviatime/internal/db"
)

func main() {
	code := flag.String("venue", "", "three letter venue code")
	flag.Parse()

	venue := strings.ToUpper(strings.TrimSpace(*code))
	if venue == "" {
		log.Fatal("venue code is required")
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open(config.Load())
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	store := db.NewStore(conn)
	ctx := context.Background()

	err = store.DeleteVenue(ctx, venue)
	if errors.Is(err, db.ErrVenueInUse) {
		checkIns, _ := store.CountVenueCheckIns(ctx, venue)
		log.Fatalf("%s still has %d check-ins or a discount; hold it instead", venue, checkIns)
	}
	if err != nil {
		log.Fatalf("failed to delete %s: %v", venue, err)
	}
	log.Printf("deleted venue %s", venue)
}
