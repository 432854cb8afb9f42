package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyVilla     PropertyType = "villa"
	PropertyCondo     PropertyType = "condo"
	PropertyStudio    PropertyType = "studio"
	PropertyCabin     PropertyType = "cabin"
	PropertyHotel     PropertyType = "hotel"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyApartment, PropertyHouse, PropertyVilla, PropertyCondo,
		PropertyStudio, PropertyCabin, PropertyHotel:
		return true
	}
	return false
}

type Listing struct {
	ID            uuid.UUID    `json:"listing_id" gorm:"column:listing_id;type:uuid;primaryKey"`
	Title         string       `json:"title" gorm:"size:200;not null"`
	Description   string       `json:"description" gorm:"type:text"`
	PricePerNight float64      `json:"price_per_night" gorm:"type:decimal(10,2);not null"`
	Location      string       `json:"location" gorm:"size:200"`
	PropertyType  PropertyType `json:"property_type" gorm:"size:20;default:'apartment'"`
	Bedrooms      int          `json:"bedrooms" gorm:"default:1"`
	Bathrooms     int          `json:"bathrooms" gorm:"default:1"`
	MaxGuests     int          `json:"max_guests" gorm:"default:2"`
	Amenities     string       `json:"amenities" gorm:"type:text"`
	HostID        int64        `json:"host_id" gorm:"column:host_id;not null;index"`
	IsAvailable   bool         `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID"`
}

func (Listing) TableName() string { return "listings" }

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
