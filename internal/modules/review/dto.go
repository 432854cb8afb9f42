package review

import "github.com/google/uuid"

type CreateReviewRequest struct {
	ListingID  uuid.UUID  `json:"listing_id" validate:"required"`
	ReviewerID int64      `json:"reviewer_id" validate:"required,gt=0"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	Rating     int        `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string     `json:"comment"`
}

// UpdateReviewRequest replaces rating and comment (PUT). The listing,
// reviewer and booking references are immutable once written.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type PatchReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}
