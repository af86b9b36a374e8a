package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wanderer/internal/errors"
	"wanderer/internal/model"
	"wanderer/internal/repository"
)

// ConnectionService governs the tourist-to-guide connection lifecycle.
type ConnectionService interface {
	Create(ctx context.Context, fromUserID, toUserID uuid.UUID, message, tripDetails string, budget decimal.NullDecimal) (*model.Connection, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.ConnectionView, error)
	Accept(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error)
	Decline(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error)
	Cancel(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error)
}

type connectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
	logRepo  repository.ConnectionLogRepository
	// Channel for async audit logging
	logChannel chan model.ConnectionLog
}

// NewConnectionService creates a new connection service.
func NewConnectionService(
	connRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	logRepo repository.ConnectionLogRepository,
) ConnectionService {
	service := &connectionService{
		connRepo:   connRepo,
		userRepo:   userRepo,
		logRepo:    logRepo,
		logChannel: make(chan model.ConnectionLog, 100),
	}

	// Start async log worker
	go service.logWorker(context.Background())

	return service
}

// logWorker batches audit entries to the database.
func (s *connectionService) logWorker(ctx context.Context) {
	batch := make([]model.ConnectionLog, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-s.logChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.logRepo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 10 {
				_ = s.logRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.logRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}

// logTransition records a transition attempt asynchronously.
func (s *connectionService) logTransition(ctx context.Context, connectionID, actorID uuid.UUID, status model.ConnectionStatus, errorMessage string) {
	entry := model.ConnectionLog{
		ConnectionID: connectionID,
		ActorID:      actorID,
		Status:       status,
		ErrorMessage: errorMessage,
	}

	select {
	case s.logChannel <- entry:
	default:
		// Channel full, log synchronously as fallback
		_ = s.logRepo.Create(ctx, &entry)
	}
}

// Create validates both participants and inserts a pending connection.
// A second pending request to the same guide while one is outstanding is
// rejected rather than silently duplicated.
func (s *connectionService) Create(ctx context.Context, fromUserID, toUserID uuid.UUID, message, tripDetails string, budget decimal.NullDecimal) (*model.Connection, error) {
	from, err := s.userRepo.FindByID(ctx, fromUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find sender: %w", err)
	}
	to, err := s.userRepo.FindByID(ctx, toUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGuideNotFound
		}
		return nil, fmt.Errorf("find recipient: %w", err)
	}

	if from.Role != model.RoleTourist || to.Role != model.RoleGuide {
		return nil, errors.ErrInvalidRole
	}

	pending, err := s.connRepo.HasPending(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, fmt.Errorf("check pending: %w", err)
	}
	if pending {
		return nil, errors.ErrDuplicatePending
	}

	conn := &model.Connection{
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Status:      model.ConnectionStatusPending,
		Message:     message,
		TripDetails: tripDetails,
		Budget:      budget,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}

	s.logTransition(ctx, conn.ID, fromUserID, model.ConnectionStatusPending, "")

	return conn, nil
}

// ListForUser returns every connection the user participates in, with
// denormalized participant snapshots resolved in one batched lookup.
func (s *connectionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.ConnectionView, error) {
	conns, err := s.connRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find connections: %w", err)
	}
	if len(conns) == 0 {
		return []model.ConnectionView{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(conns)*2)
	ids := make([]uuid.UUID, 0, len(conns)*2)
	for _, c := range conns {
		for _, id := range []uuid.UUID{c.FromUserID, c.ToUserID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find participants: %w", err)
	}
	snapshots := make(map[uuid.UUID]model.Snapshot, len(users))
	for i := range users {
		snapshots[users[i].ID] = users[i].Snapshot()
	}

	views := make([]model.ConnectionView, 0, len(conns))
	for _, c := range conns {
		view := model.ConnectionView{Connection: c}
		if snap, ok := snapshots[c.FromUserID]; ok {
			view.FromUser = &snap
		}
		if snap, ok := snapshots[c.ToUserID]; ok {
			view.ToUser = &snap
		}
		views = append(views, view)
	}
	return views, nil
}

// Accept moves a pending connection to accepted. Only the guide side may accept.
func (s *connectionService) Accept(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error) {
	return s.resolve(ctx, id, actingUserID, model.ConnectionStatusAccepted)
}

// Decline moves a pending connection to declined. Only the guide side may decline.
func (s *connectionService) Decline(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error) {
	return s.resolve(ctx, id, actingUserID, model.ConnectionStatusDeclined)
}

// Cancel moves a pending connection to cancelled. Only the requesting tourist
// may cancel.
func (s *connectionService) Cancel(ctx context.Context, id, actingUserID uuid.UUID) (*model.Connection, error) {
	return s.resolve(ctx, id, actingUserID, model.ConnectionStatusCancelled)
}

// resolve authorizes the actor for the requested terminal status, then
// performs the transition as a compare-and-swap guarded on status='pending'.
// Under a concurrent accept/decline race exactly one caller wins; the loser
// observes a resolved row and gets ErrInvalidTransition.
func (s *connectionService) resolve(ctx context.Context, id, actingUserID uuid.UUID, target model.ConnectionStatus) (*model.Connection, error) {
	conn, err := s.connRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("find connection: %w", err)
	}

	switch target {
	case model.ConnectionStatusAccepted, model.ConnectionStatusDeclined:
		if conn.ToUserID != actingUserID {
			return nil, errors.ErrNotPermitted
		}
	case model.ConnectionStatusCancelled:
		if conn.FromUserID != actingUserID {
			return nil, errors.ErrNotPermitted
		}
	default:
		return nil, errors.ErrNotPermitted
	}

	if conn.Status.Terminal() {
		return nil, errors.ErrInvalidTransition
	}

	won, err := s.connRepo.ResolveIfPending(ctx, id, target, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve connection: %w", err)
	}
	if !won {
		// Lost the race against a concurrent transition.
		s.logTransition(ctx, id, actingUserID, target, errors.ErrInvalidTransition.Error())
		return nil, errors.ErrInvalidTransition
	}

	conn.Status = target
	conn.ResolvedBy = &actingUserID
	conn.UpdatedAt = time.Now()

	s.logTransition(ctx, id, actingUserID, target, "")

	return conn, nil
}
