package main

import (
	"context"
	"flag"
	"log"

	"triviatime/internal/config"
	"triviatime/internal/db"
)

func main() {
	username := flag.String("username", "", "staff username")
	password := flag.String("password", "", "staff password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open(config.Load())
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.NewStore(conn).SetStaffPassword(context.Background(), *username, *password); err != nil {
		log.Fatalf("failed to save staff user: %v", err)
	}
	log.Printf("staff user saved username=%s", *username)
}
