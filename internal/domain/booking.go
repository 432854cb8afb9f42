package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID              uuid.UUID     `json:"booking_id" gorm:"column:booking_id;type:uuid;primaryKey"`
	ListingID       uuid.UUID     `json:"listing_id" gorm:"column:listing_id;type:uuid;not null;index"`
	GuestID         int64         `json:"guest_id" gorm:"column:guest_id;not null;index"`
	CheckInDate     time.Time     `json:"-" gorm:"column:check_in_date;not null"`
	CheckOutDate    time.Time     `json:"-" gorm:"column:check_out_date;not null"`
	NumberOfGuests  int           `json:"number_of_guests" gorm:"default:1"`
	TotalPrice      float64       `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status          BookingStatus `json:"status" gorm:"size:20;default:'pending'"`
	SpecialRequests string        `json:"special_requests" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Guest   *User    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Nights is the length of stay; check-out strictly after check-in is
// enforced before a booking ever reaches the store.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
