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

const guideListCacheTTL = 5 * time.Minute

// GuideService handles guide listing and nearby-guide matching.
type GuideService interface {
	ListGuides(ctx context.Context) ([]model.Snapshot, error)
	GetGuide(ctx context.Context, userID uuid.UUID) (*model.Snapshot, error)
	Nearby(ctx context.Context, lat, lon float64, limit int) ([]RankedGuide, error)
}

type guideService struct {
	userRepo     repository.UserRepository
	cache        *cache.Client
	defaultLimit int
}

// NewGuideService creates a new guide service.
func NewGuideService(userRepo repository.UserRepository, cache *cache.Client, defaultLimit int) GuideService {
	return &guideService{
		userRepo:     userRepo,
		cache:        cache,
		defaultLimit: defaultLimit,
	}
}

const guideListCacheKey = "guides:all"

// ListGuides returns all guides with their profiles, cached briefly.
func (s *guideService) ListGuides(ctx context.Context) ([]model.Snapshot, error) {
	if data, _ := s.cache.Get(ctx, guideListCacheKey); data != nil {
		var cached []model.Snapshot
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	guides, err := s.userRepo.ListByRole(ctx, model.RoleGuide)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}

	snapshots := make([]model.Snapshot, 0, len(guides))
	for i := range guides {
		snapshots = append(snapshots, guides[i].Snapshot())
	}

	if payload, err := json.Marshal(snapshots); err == nil {
		_ = s.cache.Set(ctx, guideListCacheKey, payload, guideListCacheTTL)
	}
	return snapshots, nil
}

// GetGuide returns a single guide with profile.
func (s *guideService) GetGuide(ctx context.Context, userID uuid.UUID) (*model.Snapshot, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGuideNotFound
		}
		return nil, fmt.Errorf("find guide: %w", err)
	}
	if user.Role != model.RoleGuide {
		return nil, errors.ErrGuideNotFound
	}
	snap := user.Snapshot()
	return &snap, nil
}

// Nearby ranks guides by distance from the given origin and returns the
// closest ones. Guides without a reported position are skipped. The result
// size is limit, or the configured default when limit is zero.
func (s *guideService) Nearby(ctx context.Context, lat, lon float64, limit int) ([]RankedGuide, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	guides, err := s.userRepo.ListByRole(ctx, model.RoleGuide)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}

	return rankNearby(geo.Point{Lat: lat, Lon: lon}, guides, limit), nil
}
