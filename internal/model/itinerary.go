package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Itinerary is a user's planned trip.
type Itinerary struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User   User             `json:"-" gorm:"foreignKey:UserID"`
	Places []ItineraryPlace `json:"places,omitempty" gorm:"foreignKey:ItineraryID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Itinerary) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ItineraryPlace positions a place inside an itinerary.
type ItineraryPlace struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ItineraryID uuid.UUID `json:"itinerary_id" gorm:"type:char(36);not null;index"`
	PlaceID     uuid.UUID `json:"place_id" gorm:"type:char(36);not null;index"`
	Order       int       `json:"order" gorm:"column:position;not null"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Place Place `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
}

// BeforeCreate sets UUID before creating the record.
func (ip *ItineraryPlace) BeforeCreate(tx *gorm.DB) error {
	if ip.ID == uuid.Nil {
		ip.ID = uuid.New()
	}
	return nil
}

// SavedPlace is a user's bookmark of a place, unique per user/place pair.
type SavedPlace struct {
	ID      uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_saved_user_place"`
	PlaceID uuid.UUID `json:"place_id" gorm:"type:char(36);not null;uniqueIndex:idx_saved_user_place"`
	Notes   string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Place Place `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
}

// BeforeCreate sets UUID before creating the record.
func (sp *SavedPlace) BeforeCreate(tx *gorm.DB) error {
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	return nil
}
