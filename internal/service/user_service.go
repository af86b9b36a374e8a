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

const userCacheTTL = 5 * time.Minute

// UserService handles user profile reads and location pings.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error
	UpdateGuideProfile(ctx context.Context, userID uuid.UUID, input GuideProfileInput) (*model.GuideProfile, error)
}

type userService struct {
	userRepo    repository.UserRepository
	profileRepo repository.GuideProfileRepository
	cache       *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, profileRepo repository.GuideProfileRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateLocation records a location ping for the user.
func (s *userService) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	if !geo.ValidCoordinates(lat, lon) {
		return errors.ErrInvalidCoordinates
	}

	if err := s.userRepo.UpdateLocation(ctx, id, lat, lon, time.Now()); err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	// Invalidate stale cached views of this user
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, guideListCacheKey)

	return nil
}

// UpdateGuideProfile replaces the profile fields of an existing guide profile.
func (s *userService) UpdateGuideProfile(ctx context.Context, userID uuid.UUID, input GuideProfileInput) (*model.GuideProfile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGuideNotFound
		}
		return nil, fmt.Errorf("find guide profile: %w", err)
	}

	profile.Bio = input.Bio
	profile.Languages = model.StringList(input.Languages)
	profile.Specialties = model.StringList(input.Specialties)
	profile.Location = input.Location
	profile.Experience = input.Experience

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update guide profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	_ = s.cache.Delete(ctx, guideListCacheKey)

	return profile, nil
}
