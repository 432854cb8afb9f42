package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review keeps a composite unique index on (listing_id, reviewer_id):
// the constraint, not an application-side lookup, is what rejects
// concurrent duplicate submissions.
type Review struct {
	ID         uuid.UUID  `json:"review_id" gorm:"column:review_id;type:uuid;primaryKey"`
	ListingID  uuid.UUID  `json:"listing_id" gorm:"column:listing_id;type:uuid;not null;uniqueIndex:idx_one_review_per_reviewer"`
	ReviewerID int64      `json:"reviewer_id" gorm:"column:reviewer_id;not null;uniqueIndex:idx_one_review_per_reviewer"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty" gorm:"column:booking_id;type:uuid;uniqueIndex"`
	Rating     int        `json:"rating" gorm:"not null"`
	Comment    string     `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Listing  *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Reviewer *User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
