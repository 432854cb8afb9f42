package review

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	listings ListingGate
	bookings BookingGate
	users    UserRepository
}

func NewService(reviews ReviewRepository, listings ListingGate, bookings BookingGate, users UserRepository) *Service {
	return &Service{reviews: reviews, listings: listings, bookings: bookings, users: users}
}

// Create persists a review. The duplicate check is not done here:
// the (listing, reviewer) unique index is the single authoritative
// guard, so concurrent duplicates cannot slip through between a read
// and a write.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.listings.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, req.ReviewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewerNotFound
		}
		return nil, err
	}

	if req.BookingID != nil {
		b, err := s.bookings.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		if b.ListingID != req.ListingID || b.GuestID != req.ReviewerID {
			return nil, ErrBookingMismatch
		}
	}

	rv := &domain.Review{
		ListingID:  req.ListingID,
		ReviewerID: req.ReviewerID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) List(ctx context.Context, f repository.ReviewFilters) ([]domain.Review, int64, error) {
	return s.reviews.GetAll(ctx, f)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv.Rating = req.Rating
	rv.Comment = req.Comment

	if err := s.reviews.Save(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Patch(ctx context.Context, id uuid.UUID, req PatchReviewRequest) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRequest
		}
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		rv.Comment = *req.Comment
	}

	if err := s.reviews.Save(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// isUniqueViolation matches unique-constraint failures from both
// backends: typed 23505 from Postgres, message text from SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
