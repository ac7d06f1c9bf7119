// Command seed fills a development database with fake users, portfolios and
// achievements. Refuses to run against production.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/Adryeh/Portfolio-Creator/internal/config"
	"github.com/Adryeh/Portfolio-Creator/internal/database"
	"github.com/Adryeh/Portfolio-Creator/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	achievements := flag.Int("achievements", 3, "achievements per user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.AchievementsPerUser = *achievements

	if err := seed.Seed(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users (password: %q)", opts.Users, seed.DefaultPassword)
}
