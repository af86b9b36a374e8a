package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/model"
)

// ItineraryRepository defines itinerary persistence operations.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *model.Itinerary) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Itinerary, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Itinerary, error)
	AddPlace(ctx context.Context, place *model.ItineraryPlace) error
	ListPlaces(ctx context.Context, itineraryID uuid.UUID) ([]model.ItineraryPlace, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository creates a new itinerary repository.
func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Create creates a new itinerary.
func (r *itineraryRepository) Create(ctx context.Context, itinerary *model.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

// FindByID finds an itinerary by ID.
func (r *itineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Itinerary, error) {
	var itinerary model.Itinerary
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&itinerary).Error; err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// ListByUser lists a user's itineraries, newest first.
func (r *itineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Itinerary, error) {
	var itineraries []model.Itinerary
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&itineraries).Error; err != nil {
		return nil, err
	}
	return itineraries, nil
}

// AddPlace appends a place to an itinerary.
func (r *itineraryRepository) AddPlace(ctx context.Context, place *model.ItineraryPlace) error {
	return r.db.WithContext(ctx).Create(place).Error
}

// ListPlaces lists an itinerary's places in visit order, place records included.
func (r *itineraryRepository) ListPlaces(ctx context.Context, itineraryID uuid.UUID) ([]model.ItineraryPlace, error) {
	var places []model.ItineraryPlace
	if err := r.db.WithContext(ctx).Preload("Place").
		Where("itinerary_id = ?", itineraryID).
		Order("position").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// SavedPlaceRepository defines saved place persistence operations.
type SavedPlaceRepository interface {
	Create(ctx context.Context, saved *model.SavedPlace) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedPlace, error)
}

type savedPlaceRepository struct {
	db *gorm.DB
}

// NewSavedPlaceRepository creates a new saved place repository.
func NewSavedPlaceRepository(db *gorm.DB) SavedPlaceRepository {
	return &savedPlaceRepository{db: db}
}

// Create creates a new saved place bookmark.
func (r *savedPlaceRepository) Create(ctx context.Context, saved *model.SavedPlace) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

// ListByUser lists a user's bookmarks, place records included.
func (r *savedPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedPlace, error) {
	var saved []model.SavedPlace
	if err := r.db.WithContext(ctx).Preload("Place").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}
