package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrBadDate          = errors.New("invalid date format")
	ErrInvalidGuests    = errors.New("invalid guest count")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNotFound         = errors.New("booking not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrNotAvailable     = errors.New("listing not available")
	ErrCapacityExceeded = errors.New("guest capacity exceeded")
)
