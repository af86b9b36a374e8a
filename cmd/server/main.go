package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "wanderer/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wanderer/internal/auth"
	"wanderer/internal/cache"
	"wanderer/internal/config"
	"wanderer/internal/db"
	"wanderer/internal/handler"
	"wanderer/internal/model"
	"wanderer/internal/repository"
	"wanderer/internal/router"
	"wanderer/internal/seed"
	"wanderer/internal/service"
)

// @title Maharashtra Wanderer API
// @version 1.0
// @description Tourism API connecting tourists with local guides: nearby guide discovery, connection requests, places, and itineraries.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SavedPlace{},
			&model.ItineraryPlace{},
			&model.Itinerary{},
			&model.ConnectionLog{},
			&model.Connection{},
			&model.Place{},
			&model.GuideProfile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.GuideProfile{},
		&model.Connection{},
		&model.ConnectionLog{},
		&model.Place{},
		&model.Itinerary{},
		&model.ItineraryPlace{},
		&model.SavedPlace{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable, running without cache: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewGuideProfileRepository(gormDB)
	connRepo := repository.NewConnectionRepository(gormDB)
	connLogRepo := repository.NewConnectionLogRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)
	itineraryRepo := repository.NewItineraryRepository(gormDB)
	savedPlaceRepo := repository.NewSavedPlaceRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, profileRepo, cacheClient)
	guideService := service.NewGuideService(userRepo, cacheClient, cfg.NearbyLimit)
	connectionService := service.NewConnectionService(connRepo, userRepo, connLogRepo)
	placeService := service.NewPlaceService(placeRepo, savedPlaceRepo, userRepo, cacheClient)
	itineraryService := service.NewItineraryService(itineraryRepo, placeRepo, userRepo)
	seeder := seed.NewSeeder(userRepo, profileRepo, placeRepo, cfg.JitterMaxKm)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	guideHandler := handler.NewGuideHandler(guideService)
	connectionHandler := handler.NewConnectionHandler(connectionService)
	placeHandler := handler.NewPlaceHandler(placeService)
	itineraryHandler := handler.NewItineraryHandler(itineraryService)
	seedHandler := handler.NewSeedHandler(seeder)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		guideHandler,
		connectionHandler,
		placeHandler,
		itineraryHandler,
		seedHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
