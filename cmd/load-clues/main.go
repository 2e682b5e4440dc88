package main

import (
	"context"
	"flag"
	"log"

	"triviatime/internal/config"
	"triviatime/internal/db"
)

func main() {
	filePath := flag.String("file", "clues.csv", "path to clues csv (date,title,url)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open(config.Load())
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	loaded, err := db.NewStore(conn).LoadClues(context.Background(), *filePath)
	if err != nil {
		log.Fatalf("failed to load clues after %d rows: %v", loaded, err)
	}
	log.Printf("loaded %d clues", loaded)
}
