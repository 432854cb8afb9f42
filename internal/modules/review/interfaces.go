package review

import (
	"context"

	"github.com/google/uuid"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetAll(ctx context.Context, f repository.ReviewFilters) ([]domain.Review, int64, error)
	Save(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListingGate checks that the reviewed listing exists
type ListingGate interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

// BookingGate resolves an optional booking reference
type BookingGate interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// UserRepository is the existence gate for reviewer references
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
