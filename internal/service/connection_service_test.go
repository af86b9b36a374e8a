package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wanderer/internal/errors"
	"wanderer/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64, at time.Time) error {
	args := m.Called(ctx, id, lat, lon, at)
	return args.Error(0)
}

// MockConnectionRepository is a mock implementation of ConnectionRepository.
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) Create(ctx context.Context, conn *model.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockConnectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Connection), args.Error(1)
}

func (m *MockConnectionRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Connection), args.Error(1)
}

func (m *MockConnectionRepository) HasPending(ctx context.Context, fromUserID, toUserID uuid.UUID) (bool, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnectionRepository) ResolveIfPending(ctx context.Context, id uuid.UUID, status model.ConnectionStatus, actorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, status, actorID)
	return args.Bool(0), args.Error(1)
}

// MockConnectionLogRepository is a mock implementation of ConnectionLogRepository.
type MockConnectionLogRepository struct {
	mock.Mock
}

func (m *MockConnectionLogRepository) Create(ctx context.Context, log *model.ConnectionLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockConnectionLogRepository) CreateBatch(ctx context.Context, logs []model.ConnectionLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

func newLogRepoMock() *MockConnectionLogRepository {
	// The async worker may or may not flush before the test finishes.
	m := new(MockConnectionLogRepository)
	m.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

func touristAndGuide() (*model.User, *model.User) {
	tourist := &model.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Role: model.RoleTourist}
	guide := &model.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com", Role: model.RoleGuide}
	return tourist, guide
}

func TestConnectionService_Create(t *testing.T) {
	tourist, guide := touristAndGuide()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockConnectionRepository)
		expectedError error
	}{
		{
			name: "successful request",
			setupMock: func(mUser *MockUserRepository, mConn *MockConnectionRepository) {
				mUser.On("FindByID", mock.Anything, tourist.ID).Return(tourist, nil)
				mUser.On("FindByID", mock.Anything, guide.ID).Return(guide, nil)
				mConn.On("HasPending", mock.Anything, tourist.ID, guide.ID).Return(false, nil)
				mConn.On("Create", mock.Anything, mock.AnythingOfType("*model.Connection")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "sender not found",
			setupMock: func(mUser *MockUserRepository, mConn *MockConnectionRepository) {
				mUser.On("FindByID", mock.Anything, tourist.ID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name: "recipient not found",
			setupMock: func(mUser *MockUserRepository, mConn *MockConnectionRepository) {
				mUser.On("FindByID", mock.Anything, tourist.ID).Return(tourist, nil)
				mUser.On("FindByID", mock.Anything, guide.ID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrGuideNotFound,
		},
		{
			name: "guide cannot send a request",
			setupMock: func(mUser *MockUserRepository, mConn *MockConnectionRepository) {
				mUser.On("FindByID", mock.Anything, tourist.ID).Return(guide, nil)
				mUser.On("FindByID", mock.Anything, guide.ID).Return(tourist, nil)
			},
			expectedError: errors.ErrInvalidRole,
		},
		{
			name: "duplicate pending request",
			setupMock: func(mUser *MockUserRepository, mConn *MockConnectionRepository) {
				mUser.On("FindByID", mock.Anything, tourist.ID).Return(tourist, nil)
				mUser.On("FindByID", mock.Anything, guide.ID).Return(guide, nil)
				mConn.On("HasPending", mock.Anything, tourist.ID, guide.ID).Return(true, nil)
			},
			expectedError: errors.ErrDuplicatePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockConnRepo := new(MockConnectionRepository)
			tt.setupMock(mockUserRepo, mockConnRepo)

			service := NewConnectionService(mockConnRepo, mockUserRepo, newLogRepoMock())
			conn, err := service.Create(context.Background(), tourist.ID, guide.ID, "hello", "Mumbai weekend", decimal.NullDecimal{})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, conn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, conn)
				assert.Equal(t, model.ConnectionStatusPending, conn.Status)
				assert.Equal(t, tourist.ID, conn.FromUserID)
				assert.Equal(t, guide.ID, conn.ToUserID)
				assert.Nil(t, conn.ResolvedBy)
			}

			mockUserRepo.AssertExpectations(t)
			mockConnRepo.AssertExpectations(t)
		})
	}
}

func TestConnectionService_Transitions(t *testing.T) {
	tourist, guide := touristAndGuide()
	stranger := uuid.New()
	connID := uuid.New()

	pendingConn := func() *model.Connection {
		return &model.Connection{
			ID:         connID,
			FromUserID: tourist.ID,
			ToUserID:   guide.ID,
			Status:     model.ConnectionStatusPending,
		}
	}

	tests := []struct {
		name          string
		actor         uuid.UUID
		target        model.ConnectionStatus
		setupMock     func(*MockConnectionRepository)
		expectedError error
	}{
		{
			name:   "guide accepts pending request",
			actor:  guide.ID,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
				m.On("ResolveIfPending", mock.Anything, connID, model.ConnectionStatusAccepted, guide.ID).Return(true, nil)
			},
		},
		{
			name:   "guide declines pending request",
			actor:  guide.ID,
			target: model.ConnectionStatusDeclined,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
				m.On("ResolveIfPending", mock.Anything, connID, model.ConnectionStatusDeclined, guide.ID).Return(true, nil)
			},
		},
		{
			name:   "tourist cancels own request",
			actor:  tourist.ID,
			target: model.ConnectionStatusCancelled,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
				m.On("ResolveIfPending", mock.Anything, connID, model.ConnectionStatusCancelled, tourist.ID).Return(true, nil)
			},
		},
		{
			name:   "tourist cannot accept",
			actor:  tourist.ID,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
			},
			expectedError: errors.ErrNotPermitted,
		},
		{
			name:   "guide cannot cancel",
			actor:  guide.ID,
			target: model.ConnectionStatusCancelled,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
			},
			expectedError: errors.ErrNotPermitted,
		},
		{
			name:   "stranger gets a generic denial",
			actor:  stranger,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
			},
			expectedError: errors.ErrNotPermitted,
		},
		{
			name:   "unknown connection",
			actor:  guide.ID,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrConnectionNotFound,
		},
		{
			name:   "already resolved connection",
			actor:  guide.ID,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				resolved := pendingConn()
				resolved.Status = model.ConnectionStatusDeclined
				m.On("FindByID", mock.Anything, connID).Return(resolved, nil)
			},
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:   "lost the update race",
			actor:  guide.ID,
			target: model.ConnectionStatusAccepted,
			setupMock: func(m *MockConnectionRepository) {
				m.On("FindByID", mock.Anything, connID).Return(pendingConn(), nil)
				m.On("ResolveIfPending", mock.Anything, connID, model.ConnectionStatusAccepted, guide.ID).Return(false, nil)
			},
			expectedError: errors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockConnRepo := new(MockConnectionRepository)
			tt.setupMock(mockConnRepo)

			service := NewConnectionService(mockConnRepo, new(MockUserRepository), newLogRepoMock())

			var (
				conn *model.Connection
				err  error
			)
			switch tt.target {
			case model.ConnectionStatusAccepted:
				conn, err = service.Accept(context.Background(), connID, tt.actor)
			case model.ConnectionStatusDeclined:
				conn, err = service.Decline(context.Background(), connID, tt.actor)
			case model.ConnectionStatusCancelled:
				conn, err = service.Cancel(context.Background(), connID, tt.actor)
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, conn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, conn)
				assert.Equal(t, tt.target, conn.Status)
				assert.NotNil(t, conn.ResolvedBy)
				assert.Equal(t, tt.actor, *conn.ResolvedBy)
			}

			mockConnRepo.AssertExpectations(t)
		})
	}
}

// casConnectionRepo backs ResolveIfPending with a mutex so concurrent
// transitions race the way the conditional UPDATE does in MySQL.
type casConnectionRepo struct {
	MockConnectionRepository
	mu   sync.Mutex
	conn *model.Connection
}

func (r *casConnectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *r.conn
	return &c, nil
}

func (r *casConnectionRepo) ResolveIfPending(ctx context.Context, id uuid.UUID, status model.ConnectionStatus, actorID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn.Status != model.ConnectionStatusPending {
		return false, nil
	}
	r.conn.Status = status
	r.conn.ResolvedBy = &actorID
	return true, nil
}

func TestConnectionService_ConcurrentResolve(t *testing.T) {
	tourist, guide := touristAndGuide()
	connID := uuid.New()

	repo := &casConnectionRepo{
		conn: &model.Connection{
			ID:         connID,
			FromUserID: tourist.ID,
			ToUserID:   guide.ID,
			Status:     model.ConnectionStatusPending,
		},
	}

	service := NewConnectionService(repo, new(MockUserRepository), newLogRepoMock())

	var wg sync.WaitGroup
	results := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, results[0] = service.Accept(context.Background(), connID, guide.ID)
	}()
	go func() {
		defer wg.Done()
		_, results[1] = service.Cancel(context.Background(), connID, tourist.ID)
	}()
	wg.Wait()

	// Exactly one side wins; the other observes a resolved connection.
	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, errors.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, winners)
	assert.True(t, repo.conn.Status.Terminal())
}

func TestConnectionService_ListForUser(t *testing.T) {
	tourist, guide := touristAndGuide()
	conn := model.Connection{
		ID:         uuid.New(),
		FromUserID: tourist.ID,
		ToUserID:   guide.ID,
		Status:     model.ConnectionStatusPending,
	}

	mockConnRepo := new(MockConnectionRepository)
	mockUserRepo := new(MockUserRepository)
	mockConnRepo.On("FindByParticipant", mock.Anything, tourist.ID).Return([]model.Connection{conn}, nil)
	mockUserRepo.On("FindByIDs", mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2
	})).Return([]model.User{*tourist, *guide}, nil)

	service := NewConnectionService(mockConnRepo, mockUserRepo, newLogRepoMock())
	views, err := service.ListForUser(context.Background(), tourist.ID)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.NotNil(t, views[0].FromUser)
	assert.NotNil(t, views[0].ToUser)
	assert.Equal(t, tourist.Name, views[0].FromUser.Name)
	assert.Equal(t, guide.Name, views[0].ToUser.Name)

	mockConnRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}
