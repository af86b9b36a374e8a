package repository

import (
	"context"

	"gorm.io/gorm"

	"wanderer/internal/model"
)

// ConnectionLogRepository defines connection audit log persistence operations.
type ConnectionLogRepository interface {
	Create(ctx context.Context, log *model.ConnectionLog) error
	CreateBatch(ctx context.Context, logs []model.ConnectionLog) error
}

type connectionLogRepository struct {
	db *gorm.DB
}

// NewConnectionLogRepository creates a new connection log repository.
func NewConnectionLogRepository(db *gorm.DB) ConnectionLogRepository {
	return &connectionLogRepository{db: db}
}

// Create creates a new log entry.
func (r *connectionLogRepository) Create(ctx context.Context, log *model.ConnectionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CreateBatch creates multiple log entries in a single statement.
func (r *connectionLogRepository) CreateBatch(ctx context.Context, logs []model.ConnectionLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}
