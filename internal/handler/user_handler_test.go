package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wanderer/internal/model"
	"wanderer/internal/service"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	args := m.Called(ctx, id, lat, lon)
	return args.Error(0)
}

func (m *MockUserService) UpdateGuideProfile(ctx context.Context, userID uuid.UUID, input service.GuideProfileInput) (*model.GuideProfile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideProfile), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func locationRequest(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/user/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// What the jwt middleware leaves in the context after verification.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID.String()})
	c.Set("user", token)

	return c, rec
}

func TestUserHandler_UpdateLocation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		expectCall   bool
		lat, lon     float64
		expectedCode int
	}{
		{
			name:       "typical coordinates",
			body:       `{"latitude": 19.0760, "longitude": 72.8777}`,
			expectCall: true, lat: 19.0760, lon: 72.8777,
			expectedCode: http.StatusOK,
		},
		{
			name:       "zero latitude on the equator is valid",
			body:       `{"latitude": 0, "longitude": 72.8777}`,
			expectCall: true, lat: 0, lon: 72.8777,
			expectedCode: http.StatusOK,
		},
		{
			name:       "zero longitude on the prime meridian is valid",
			body:       `{"latitude": 19.0760, "longitude": 0}`,
			expectCall: true, lat: 19.0760, lon: 0,
			expectedCode: http.StatusOK,
		},
		{
			name:         "latitude out of range",
			body:         `{"latitude": 90.5, "longitude": 72.8777}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "longitude out of range",
			body:         `{"latitude": 19.0760, "longitude": -180.5}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUserService)
			if tt.expectCall {
				mockService.On("UpdateLocation", mock.Anything, userID, tt.lat, tt.lon).Return(nil)
			}

			h := NewUserHandler(mockService)
			c, rec := locationRequest(t, userID, tt.body)

			err := h.UpdateLocation(c)

			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}

			mockService.AssertExpectations(t)
		})
	}
}
