package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConnectionStatus represents the lifecycle state of a connection request.
// A connection starts pending and moves exactly once to a terminal status.
// Decline (by the guide) and cancel (by the tourist) are distinct terminal
// states so that the resolution actor is never lost.
type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusAccepted  ConnectionStatus = "accepted"
	ConnectionStatusDeclined  ConnectionStatus = "declined"
	ConnectionStatusCancelled ConnectionStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s ConnectionStatus) Terminal() bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusDeclined || s == ConnectionStatusCancelled
}

// Connection is a tourist's request to a guide and its resolution.
type Connection struct {
	ID          uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	FromUserID  uuid.UUID           `json:"from_user_id" gorm:"type:char(36);not null;index"`
	ToUserID    uuid.UUID           `json:"to_user_id" gorm:"type:char(36);not null;index"`
	Status      ConnectionStatus    `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Message     string              `json:"message,omitempty" gorm:"type:text"`
	TripDetails string              `json:"trip_details,omitempty" gorm:"type:text"`
	Budget      decimal.NullDecimal `json:"budget,omitempty" gorm:"type:decimal(20,2)"`
	// ResolvedBy records which participant moved the connection to its
	// terminal status; nil while pending.
	ResolvedBy *uuid.UUID `json:"resolved_by,omitempty" gorm:"type:char(36)"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	FromUser User `json:"-" gorm:"foreignKey:FromUserID"`
	ToUser   User `json:"-" gorm:"foreignKey:ToUserID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ConnectionView is the read-side shape returned to clients: the raw record
// plus denormalized participant snapshots, so listing a user's connections
// never needs per-row lookups.
type ConnectionView struct {
	Connection
	FromUser *Snapshot `json:"from_user,omitempty"`
	ToUser   *Snapshot `json:"to_user,omitempty"`
}
