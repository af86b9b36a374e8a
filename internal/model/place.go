package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceCategory classifies an attraction.
type PlaceCategory string

const (
	CategoryMonument  PlaceCategory = "monument"
	CategoryTemple    PlaceCategory = "temple"
	CategoryHeritage  PlaceCategory = "heritage"
	CategoryNature    PlaceCategory = "nature"
	CategoryWinery    PlaceCategory = "winery"
	CategoryBeach     PlaceCategory = "beach"
	CategoryLandmark  PlaceCategory = "landmark"
	CategorySpiritual PlaceCategory = "spiritual"
)

// Place is a tourist attraction in the catalog.
type Place struct {
	ID              uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string        `json:"name" gorm:"size:255;not null;index"`
	Description     string        `json:"description" gorm:"type:text"`
	Location        string        `json:"location" gorm:"size:255;index"`
	Category        PlaceCategory `json:"category" gorm:"type:varchar(32);index"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	ImageURL        string        `json:"image_url,omitempty" gorm:"size:512"`
	Rating          *float64      `json:"rating,omitempty"`
	OpeningHours    string        `json:"opening_hours,omitempty" gorm:"size:255"`
	EntryFee        string        `json:"entry_fee,omitempty" gorm:"size:255"`
	BestTimeToVisit string        `json:"best_time_to_visit,omitempty" gorm:"size:255"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
