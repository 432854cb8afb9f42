package listing

import (
	"context"

	"github.com/google/uuid"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// ListingRepository defines the interface for listing storage
type ListingRepository interface {
	GetAll(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	Create(ctx context.Context, l *domain.Listing) error
	Save(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetReviewStats(ctx context.Context, id uuid.UUID) (repository.ReviewStats, error)
}

// UserRepository is the existence gate for host references
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
