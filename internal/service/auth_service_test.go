package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wanderer/internal/auth"
	"wanderer/internal/model"
)

// MockGuideProfileRepository is a mock implementation of GuideProfileRepository.
type MockGuideProfileRepository struct {
	mock.Mock
}

func (m *MockGuideProfileRepository) Create(ctx context.Context, profile *model.GuideProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockGuideProfileRepository) Update(ctx context.Context, profile *model.GuideProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockGuideProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.GuideProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideProfile), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		nameField     string
		role          model.UserRole
		profile       *GuideProfileInput
		setupMock     func(*MockUserRepository, *MockGuideProfileRepository)
		expectedError error
	}{
		{
			name:      "successful tourist registration",
			email:     "asha@example.com",
			password:  "password123",
			nameField: "Asha Kulkarni",
			role:      model.RoleTourist,
			setupMock: func(mUser *MockUserRepository, mProfile *MockGuideProfileRepository) {
				mUser.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, gorm.ErrRecordNotFound)
				mUser.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "guide registration creates profile",
			email:     "ravi@example.com",
			password:  "password123",
			nameField: "Ravi Maharaj",
			role:      model.RoleGuide,
			profile: &GuideProfileInput{
				Bio:         "Mumbai heritage walks",
				Languages:   []string{"English", "Marathi"},
				Specialties: []string{"Heritage"},
				Location:    "Mumbai",
				Experience:  7,
			},
			setupMock: func(mUser *MockUserRepository, mProfile *MockGuideProfileRepository) {
				mUser.On("FindByEmail", mock.Anything, "ravi@example.com").Return(nil, gorm.ErrRecordNotFound)
				mUser.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mProfile.On("Create", mock.Anything, mock.AnythingOfType("*model.GuideProfile")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "user already exists",
			email:     "existing@example.com",
			password:  "password123",
			nameField: "Existing User",
			role:      model.RoleTourist,
			setupMock: func(mUser *MockUserRepository, mProfile *MockGuideProfileRepository) {
				mUser.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockProfileRepo := new(MockGuideProfileRepository)
			tt.setupMock(mockUserRepo, mockProfileRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockUserRepo, mockProfileRepo, jwtService, mockTokenStore)
			user, err := service.Register(context.Background(), tt.email, tt.password, tt.nameField, "", tt.role, tt.profile)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				if tt.profile != nil {
					assert.NotNil(t, user.GuideProfile)
					assert.Equal(t, tt.profile.Bio, user.GuideProfile.Bio)
				}
			}

			mockUserRepo.AssertExpectations(t)
			mockProfileRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "asha@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				// Generate a real bcrypt hash for the password
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				userID := uuid.New()
				mRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&model.User{
					ID:           userID,
					Email:        "asha@example.com",
					Role:         model.RoleTourist,
					PasswordHash: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, userID.String(), "asha@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "asha@example.com",
			password: "wrong-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "asha@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockUserRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUserRepo, new(MockGuideProfileRepository), jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockUserRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	userID := uuid.New()
	email := "asha@example.com"

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, email, string(model.RoleTourist))
	assert.NoError(t, err)

	t.Run("successful refresh", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(userID.String(), email, nil)
		mockUserRepo.On("FindByEmail", mock.Anything, email).Return(&model.User{
			ID:    userID,
			Email: email,
			Role:  model.RoleTourist,
		}, nil)

		service := NewAuthService(mockUserRepo, new(MockGuideProfileRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("refresh token not in store", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", assert.AnError)

		service := NewAuthService(new(MockUserRepository), new(MockGuideProfileRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		assert.Empty(t, accessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), new(MockGuideProfileRepository), jwtService, new(MockTokenStore))
		accessToken, err := service.RefreshToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		assert.Empty(t, accessToken)
	})
}
