package main

import (
	"log"
	"net/http"

	"triviatime/internal/config"
	"triviatime/internal/db"
	"triviatime/internal/mail"
	"triviatime/internal/server"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if cfg.Env != "prod" {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}
	store := db.NewStore(conn)

	var sessions server.SessionBackend
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		sessions = server.NewRedisSessions(redis.NewClient(opts))
		log.Printf("sessions stored in redis addr=%s", opts.Addr)
	}

	srv := server.New(store, cfg, mail.New(cfg), sessions)
	addr := ":" + cfg.Port
	log.Printf("triviatime server listening on %s tz=%s", addr, cfg.Timezone)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
