package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole distinguishes tourists from guides. The role is fixed at
// registration; there is no role switching.
type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleGuide   UserRole = "guide"
)

// User represents a registered tourist or guide.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;index"`
	Phone        string    `json:"phone,omitempty" gorm:"size:32"`
	Image        string    `json:"image,omitempty" gorm:"size:512"`

	// Last reported position; nil until the first location ping.
	CurrentLatitude    *float64   `json:"current_latitude,omitempty"`
	CurrentLongitude   *float64   `json:"current_longitude,omitempty"`
	LastLocationUpdate *time.Time `json:"last_location_update,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	GuideProfile *GuideProfile `json:"guide_profile,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasLocation reports whether the user has a usable position.
func (u *User) HasLocation() bool {
	return u.CurrentLatitude != nil && u.CurrentLongitude != nil
}

// Snapshot is the participant view embedded in connection responses.
// The password hash never leaves the model layer.
type Snapshot struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	Image        string        `json:"image,omitempty"`
	Role         UserRole      `json:"role"`
	GuideProfile *GuideProfile `json:"guide_profile,omitempty"`
}

// Snapshot builds the denormalized participant view of the user.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Image:        u.Image,
		Role:         u.Role,
		GuideProfile: u.GuideProfile,
	}
}
