package booking

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain"
)

// dateLayout is the wire format for check-in/check-out dates.
const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ListingID       uuid.UUID `json:"listing_id" binding:"required"`
	GuestID         int64     `json:"guest_id" binding:"required,gt=0"`
	CheckInDate     string    `json:"check_in_date" binding:"required"`
	CheckOutDate    string    `json:"check_out_date" binding:"required"`
	NumberOfGuests  int       `json:"number_of_guests" binding:"omitempty,gt=0"`
	Status          string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests string    `json:"special_requests"`
}

// UpdateBookingRequest replaces the mutable fields of a booking (PUT).
// The listing and guest references are fixed at creation; the total
// price is recomputed from the new dates.
type UpdateBookingRequest struct {
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,gt=0"`
	Status          string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	SpecialRequests string `json:"special_requests"`
}

type PatchBookingRequest struct {
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	NumberOfGuests  *int    `json:"number_of_guests"`
	Status          *string `json:"status"`
	SpecialRequests *string `json:"special_requests"`
}

// BookingResponse is the detail shape; dates go out date-only and the
// nights count is derived, never stored.
type BookingResponse struct {
	BookingID       uuid.UUID       `json:"booking_id"`
	Listing         *domain.Listing `json:"listing,omitempty"`
	Guest           *domain.User    `json:"guest,omitempty"`
	CheckInDate     string          `json:"check_in_date"`
	CheckOutDate    string          `json:"check_out_date"`
	NumberOfGuests  int             `json:"number_of_guests"`
	TotalPrice      float64         `json:"total_price"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"special_requests"`
	Nights          int             `json:"nights"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BookingListItem is the simplified list shape with denormalized
// listing title and guest name.
type BookingListItem struct {
	BookingID      uuid.UUID `json:"booking_id"`
	ListingTitle   string    `json:"listing_title"`
	GuestName      string    `json:"guest_name"`
	CheckInDate    string    `json:"check_in_date"`
	CheckOutDate   string    `json:"check_out_date"`
	Nights         int       `json:"nights"`
	NumberOfGuests int       `json:"number_of_guests"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID:       b.ID,
		Listing:         b.Listing,
		Guest:           b.Guest,
		CheckInDate:     b.CheckInDate.Format(dateLayout),
		CheckOutDate:    b.CheckOutDate.Format(dateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Nights:          b.Nights(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
