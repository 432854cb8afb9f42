package review

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrNotFound         = errors.New("not_found")
	ErrListingNotFound  = errors.New("listing_not_found")
	ErrReviewerNotFound = errors.New("reviewer_not_found")
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrBookingMismatch  = errors.New("booking_mismatch")
	ErrConflict         = errors.New("conflict")
)
