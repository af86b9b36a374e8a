package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/cache"
	"wanderer/internal/errors"
	"wanderer/internal/geo"
	"wanderer/internal/model"
	"wanderer/internal/repository"
)

const placeListCacheTTL = 10 * time.Minute

const placeListCacheKey = "places:all"

// PlaceService handles the attraction catalog and user bookmarks.
type PlaceService interface {
	ListPlaces(ctx context.Context) ([]model.Place, error)
	ListPlacesByCategory(ctx context.Context, category model.PlaceCategory) ([]model.Place, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error)
	CreatePlace(ctx context.Context, place *model.Place) (*model.Place, error)
	SavePlace(ctx context.Context, userID, placeID uuid.UUID, notes string) (*model.SavedPlace, error)
	ListSavedPlaces(ctx context.Context, userID uuid.UUID) ([]model.SavedPlace, error)
}

type placeService struct {
	placeRepo repository.PlaceRepository
	savedRepo repository.SavedPlaceRepository
	userRepo  repository.UserRepository
	cache     *cache.Client
}

// NewPlaceService creates a new place service.
func NewPlaceService(placeRepo repository.PlaceRepository, savedRepo repository.SavedPlaceRepository, userRepo repository.UserRepository, cache *cache.Client) PlaceService {
	return &placeService{
		placeRepo: placeRepo,
		savedRepo: savedRepo,
		userRepo:  userRepo,
		cache:     cache,
	}
}

// ListPlaces lists the attraction catalog, cached.
func (s *placeService) ListPlaces(ctx context.Context) ([]model.Place, error) {
	if data, _ := s.cache.Get(ctx, placeListCacheKey); data != nil {
		var cached []model.Place
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	places, err := s.placeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	if payload, err := json.Marshal(places); err == nil {
		_ = s.cache.Set(ctx, placeListCacheKey, payload, placeListCacheTTL)
	}
	return places, nil
}

// ListPlacesByCategory lists places of one category.
func (s *placeService) ListPlacesByCategory(ctx context.Context, category model.PlaceCategory) ([]model.Place, error) {
	places, err := s.placeRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list places by category: %w", err)
	}
	return places, nil
}

// GetPlace retrieves a place by ID.
func (s *placeService) GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return place, nil
}

// CreatePlace adds a place to the catalog.
func (s *placeService) CreatePlace(ctx context.Context, place *model.Place) (*model.Place, error) {
	if !geo.ValidCoordinates(place.Latitude, place.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	_ = s.cache.Delete(ctx, placeListCacheKey)
	return place, nil
}

// SavePlace bookmarks a place for a user.
func (s *placeService) SavePlace(ctx context.Context, userID, placeID uuid.UUID, notes string) (*model.SavedPlace, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if _, err := s.placeRepo.FindByID(ctx, placeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	saved := &model.SavedPlace{
		UserID:  userID,
		PlaceID: placeID,
		Notes:   notes,
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("save place: %w", err)
	}
	return saved, nil
}

// ListSavedPlaces lists a user's bookmarks.
func (s *placeService) ListSavedPlaces(ctx context.Context, userID uuid.UUID) ([]model.SavedPlace, error) {
	saved, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved places: %w", err)
	}
	return saved, nil
}
