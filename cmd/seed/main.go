package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/Greenhouse_Go/internal/bootstrap"
	"github.com/osse101/Greenhouse_Go/internal/config"
)

// seed applies migrations and upserts the catalog JSON into the configured store.
// Open challenge windows are kept; closed ones restart from now.
func main() {
	achievements := flag.String("achievements", "", "achievements config (default from ACHIEVEMENTS_CONFIG)")
	challenges := flag.String("challenges", "", "challenges config (default from CHALLENGES_CONFIG)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *achievements != "" {
		cfg.AchievementsPath = *achievements
	}
	if *challenges != "" {
		cfg.ChallengesPath = *challenges
	}
	cfg.SeedCatalog = true

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	result, err := bootstrap.SyncCatalog(ctx, cfg, store)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d achievements and %d challenges (%d open windows kept)\n",
		result.Achievements, result.Challenges, result.WindowsKept)
}
