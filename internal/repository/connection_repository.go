package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderer/internal/model"
)

// ConnectionRepository defines connection persistence operations.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *model.Connection) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Connection, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Connection, error)
	HasPending(ctx context.Context, fromUserID, toUserID uuid.UUID) (bool, error)
	// ResolveIfPending moves the connection to a terminal status with a single
	// conditional UPDATE guarded on status='pending'. It reports whether this
	// call won the transition; false means the row was already resolved.
	ResolveIfPending(ctx context.Context, id uuid.UUID, status model.ConnectionStatus, actorID uuid.UUID) (bool, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create creates a new connection record.
func (r *connectionRepository) Create(ctx context.Context, conn *model.Connection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

// FindByID finds a connection by ID.
func (r *connectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Connection, error) {
	var conn model.Connection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// FindByParticipant returns all connections where the user is on either side,
// newest first.
func (r *connectionRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Connection, error) {
	var conns []model.Connection
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

// HasPending reports whether a pending connection already exists between the pair.
func (r *connectionRepository) HasPending(ctx context.Context, fromUserID, toUserID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Connection{}).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?",
			fromUserID, toUserID, model.ConnectionStatusPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolveIfPending performs the terminal transition as an atomic
// compare-and-swap on status. Two concurrent resolvers race on the same
// WHERE clause; the row version that loses matches zero rows.
func (r *connectionRepository) ResolveIfPending(ctx context.Context, id uuid.UUID, status model.ConnectionStatus, actorID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Connection{}).
		Where("id = ? AND status = ?", id, model.ConnectionStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_by": actorID,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
