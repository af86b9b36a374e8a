package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/model"
)

// GuideProfileRepository defines guide profile persistence operations.
type GuideProfileRepository interface {
	Create(ctx context.Context, profile *model.GuideProfile) error
	Update(ctx context.Context, profile *model.GuideProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.GuideProfile, error)
}

type guideProfileRepository struct {
	db *gorm.DB
}

// NewGuideProfileRepository creates a new guide profile repository.
func NewGuideProfileRepository(db *gorm.DB) GuideProfileRepository {
	return &guideProfileRepository{db: db}
}

// Create creates a new guide profile.
func (r *guideProfileRepository) Create(ctx context.Context, profile *model.GuideProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates an existing guide profile.
func (r *guideProfileRepository) Update(ctx context.Context, profile *model.GuideProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// FindByUserID finds the profile owned by a guide user.
func (r *guideProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.GuideProfile, error) {
	var profile model.GuideProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
