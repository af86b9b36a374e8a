package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionLog is an audit entry for a connection transition attempt.
// Every attempt is logged, whether it won the transition or not.
type ConnectionLog struct {
	ID           uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	ConnectionID uuid.UUID        `json:"connection_id" gorm:"type:char(36);not null;index"`
	ActorID      uuid.UUID        `json:"actor_id" gorm:"type:char(36);not null;index"`
	Status       ConnectionStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ErrorMessage string           `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt    time.Time        `json:"created_at"`
	DeletedAt    gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Connection Connection `json:"-" gorm:"foreignKey:ConnectionID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ConnectionLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
