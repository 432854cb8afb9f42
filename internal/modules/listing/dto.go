package listing

import "staybook/internal/domain"

type CreateListingRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Location      string  `json:"location" binding:"required,max=200"`
	PropertyType  string  `json:"property_type" binding:"omitempty,oneof=apartment house villa condo studio cabin hotel"`
	Bedrooms      int     `json:"bedrooms" binding:"omitempty,gt=0"`
	Bathrooms     int     `json:"bathrooms" binding:"omitempty,gt=0"`
	MaxGuests     int     `json:"max_guests" binding:"omitempty,gt=0"`
	Amenities     string  `json:"amenities"`
	HostID        int64   `json:"host_id" binding:"required,gt=0"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateListingRequest replaces the whole listing (PUT).
type UpdateListingRequest = CreateListingRequest

// PatchListingRequest updates only the fields that are present (PATCH).
type PatchListingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"price_per_night"`
	Location      *string  `json:"location"`
	PropertyType  *string  `json:"property_type"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     *string  `json:"amenities"`
	HostID        *int64   `json:"host_id"`
	IsAvailable   *bool    `json:"is_available"`
}

// ListingDetail is the retrieve-by-id shape: the listing plus review
// aggregates. AverageRating is omitted while the listing has no reviews.
type ListingDetail struct {
	domain.Listing
	ReviewsCount  int64    `json:"reviews_count"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}
