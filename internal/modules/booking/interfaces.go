package booking

import (
	"context"

	"github.com/google/uuid"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetAll(ctx context.Context, f repository.BookingFilters) ([]repository.BookingListRow, int64, error)
	Save(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListingRepository resolves the booked listing for availability,
// capacity and price checks.
type ListingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

// UserRepository is the existence gate for guest references
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
