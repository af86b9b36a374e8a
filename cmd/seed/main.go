package main

import (
	"context"
	"log"

	"wanderer/internal/config"
	"wanderer/internal/db"
	"wanderer/internal/model"
	"wanderer/internal/repository"
	"wanderer/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.GuideProfile{},
		&model.Place{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewGuideProfileRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)

	seeder := seed.NewSeeder(userRepo, profileRepo, placeRepo, cfg.JitterMaxKm)

	ctx := context.Background()

	log.Printf("Seeding %d guides and %d places...", len(seed.Guides), len(seed.Places))
	result, err := seeder.Run(ctx)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	total, err := placeRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count places: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Guides created: %d", result.GuidesCreated)
	log.Printf("  - Guides updated: %d", result.GuidesUpdated)
	log.Printf("  - Places created: %d", result.PlacesCreated)
	log.Printf("  - Places updated: %d", result.PlacesUpdated)
	log.Printf("  - Catalog now holds %d places", total)
	log.Printf("  - Demo account password: %q", seed.DemoPassword)
}
