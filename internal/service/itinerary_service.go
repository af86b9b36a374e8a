package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/errors"
	"wanderer/internal/model"
	"wanderer/internal/repository"
)

// ItineraryService handles trip planning.
type ItineraryService interface {
	Create(ctx context.Context, userID uuid.UUID, title, description string, startDate, endDate time.Time) (*model.Itinerary, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Itinerary, error)
	AddPlace(ctx context.Context, itineraryID, actingUserID, placeID uuid.UUID, order int, notes string) (*model.ItineraryPlace, error)
	ListPlaces(ctx context.Context, itineraryID, actingUserID uuid.UUID) ([]model.ItineraryPlace, error)
}

type itineraryService struct {
	itineraryRepo repository.ItineraryRepository
	placeRepo     repository.PlaceRepository
	userRepo      repository.UserRepository
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(itineraryRepo repository.ItineraryRepository, placeRepo repository.PlaceRepository, userRepo repository.UserRepository) ItineraryService {
	return &itineraryService{
		itineraryRepo: itineraryRepo,
		placeRepo:     placeRepo,
		userRepo:      userRepo,
	}
}

// Create creates a new itinerary for the user.
func (s *itineraryService) Create(ctx context.Context, userID uuid.UUID, title, description string, startDate, endDate time.Time) (*model.Itinerary, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	itinerary := &model.Itinerary{
		UserID:      userID,
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("create itinerary: %w", err)
	}
	return itinerary, nil
}

// ListForUser lists the user's itineraries.
func (s *itineraryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Itinerary, error) {
	itineraries, err := s.itineraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	return itineraries, nil
}

// AddPlace appends a place to an itinerary owned by the acting user.
func (s *itineraryService) AddPlace(ctx context.Context, itineraryID, actingUserID, placeID uuid.UUID, order int, notes string) (*model.ItineraryPlace, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrItineraryNotFound
		}
		return nil, fmt.Errorf("find itinerary: %w", err)
	}
	if itinerary.UserID != actingUserID {
		return nil, errors.ErrNotPermitted
	}

	if _, err := s.placeRepo.FindByID(ctx, placeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	place := &model.ItineraryPlace{
		ItineraryID: itineraryID,
		PlaceID:     placeID,
		Order:       order,
		Notes:       notes,
	}
	if err := s.itineraryRepo.AddPlace(ctx, place); err != nil {
		return nil, fmt.Errorf("add itinerary place: %w", err)
	}
	return place, nil
}

// ListPlaces lists an itinerary's places in visit order; owner only.
func (s *itineraryService) ListPlaces(ctx context.Context, itineraryID, actingUserID uuid.UUID) ([]model.ItineraryPlace, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrItineraryNotFound
		}
		return nil, fmt.Errorf("find itinerary: %w", err)
	}
	if itinerary.UserID != actingUserID {
		return nil, errors.ErrNotPermitted
	}

	places, err := s.itineraryRepo.ListPlaces(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("list itinerary places: %w", err)
	}
	return places, nil
}
