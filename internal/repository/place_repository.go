package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/model"
)

// PlaceRepository defines place persistence operations.
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	Update(ctx context.Context, place *model.Place) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)
	FindByName(ctx context.Context, name string) (*model.Place, error)
	List(ctx context.Context) ([]model.Place, error)
	ListByCategory(ctx context.Context, category model.PlaceCategory) ([]model.Place, error)
	Count(ctx context.Context) (int64, error)
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// Create creates a new place.
func (r *placeRepository) Create(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

// Update updates an existing place.
func (r *placeRepository) Update(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

// FindByID finds a place by ID.
func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// FindByName finds a place by its exact name.
func (r *placeRepository) FindByName(ctx context.Context, name string) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// List lists all places ordered by name.
func (r *placeRepository) List(ctx context.Context) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).Order("name").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// ListByCategory lists places of one category ordered by name.
func (r *placeRepository) ListByCategory(ctx context.Context, category model.PlaceCategory) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).Where("category = ?", category).
		Order("name").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// Count counts all places.
func (r *placeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Place{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
