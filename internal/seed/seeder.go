package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wanderer/internal/geo"
	"wanderer/internal/model"
	"wanderer/internal/repository"
)

// Result reports what a seed run did.
type Result struct {
	GuidesCreated int `json:"guides_created"`
	GuidesUpdated int `json:"guides_updated"`
	PlacesCreated int `json:"places_created"`
	PlacesUpdated int `json:"places_updated"`
}

// Seeder loads the embedded demo dataset into the database,
// creating new records or updating existing ones.
type Seeder struct {
	userRepo    repository.UserRepository
	profileRepo repository.GuideProfileRepository
	placeRepo   repository.PlaceRepository
	jitterMaxKm float64
	rng         *rand.Rand
}

// NewSeeder creates a seeder. jitterMaxKm bounds how far synthesized
// demo guide positions may drift from the Mumbai anchor.
func NewSeeder(userRepo repository.UserRepository, profileRepo repository.GuideProfileRepository, placeRepo repository.PlaceRepository, jitterMaxKm float64) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		placeRepo:   placeRepo,
		jitterMaxKm: jitterMaxKm,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds guides and places.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	for _, g := range Guides {
		created, err := s.seedGuide(ctx, g, string(hash))
		if err != nil {
			return res, fmt.Errorf("error seeding guide %s: %w", g.Email, err)
		}
		if created {
			res.GuidesCreated++
		} else {
			res.GuidesUpdated++
		}
	}

	for _, p := range Places {
		created, err := s.seedPlace(ctx, p)
		if err != nil {
			return res, fmt.Errorf("error seeding place %s: %w", p.Name, err)
		}
		if created {
			res.PlacesCreated++
		} else {
			res.PlacesUpdated++
		}
	}

	return res, nil
}

func (s *Seeder) seedGuide(ctx context.Context, data GuideData, passwordHash string) (created bool, err error) {
	existing, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	pos := geo.NearbyPoint(s.rng, AnchorLat, AnchorLon, s.jitterMaxKm)
	now := time.Now()
	rating := data.Rating

	if existing != nil {
		existing.Name = data.Name
		existing.Image = data.Image
		existing.CurrentLatitude = &pos.Lat
		existing.CurrentLongitude = &pos.Lon
		existing.LastLocationUpdate = &now
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return false, err
		}
		if err := s.upsertProfile(ctx, existing.ID, data, rating); err != nil {
			return false, err
		}
		return false, nil
	}

	user := &model.User{
		Name:               data.Name,
		Email:              data.Email,
		PasswordHash:       passwordHash,
		Role:               model.RoleGuide,
		Image:              data.Image,
		CurrentLatitude:    &pos.Lat,
		CurrentLongitude:   &pos.Lon,
		LastLocationUpdate: &now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}
	if err := s.upsertProfile(ctx, user.ID, data, rating); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) upsertProfile(ctx context.Context, userID uuid.UUID, data GuideData, rating float64) error {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if profile != nil {
		profile.Bio = data.Bio
		profile.Languages = model.StringList(data.Languages)
		profile.Specialties = model.StringList(data.Specialties)
		profile.Location = data.Location
		profile.Experience = data.Experience
		profile.Rating = &rating
		return s.profileRepo.Update(ctx, profile)
	}

	return s.profileRepo.Create(ctx, &model.GuideProfile{
		UserID:      userID,
		Bio:         data.Bio,
		Languages:   model.StringList(data.Languages),
		Specialties: model.StringList(data.Specialties),
		Location:    data.Location,
		Experience:  data.Experience,
		Rating:      &rating,
	})
}

func (s *Seeder) seedPlace(ctx context.Context, data model.Place) (created bool, err error) {
	existing, err := s.placeRepo.FindByName(ctx, data.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if existing != nil {
		existing.Description = data.Description
		existing.Location = data.Location
		existing.Category = data.Category
		existing.Latitude = data.Latitude
		existing.Longitude = data.Longitude
		existing.ImageURL = data.ImageURL
		return false, s.placeRepo.Update(ctx, existing)
	}

	place := data
	return true, s.placeRepo.Create(ctx, &place)
}
