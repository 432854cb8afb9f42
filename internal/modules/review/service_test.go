package review

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAll(ctx context.Context, f repository.ReviewFilters) ([]domain.Review, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Save(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockListingGate struct {
	mock.Mock
}

func (m *MockListingGate) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingGate)
	mockUsers := new(MockUserRepository)

	listingID := uuid.New()
	mockListings.On("GetByID", mock.Anything, listingID).Return(&domain.Listing{ID: listingID}, nil)
	mockUsers.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReviews, mockListings, new(MockBookingGate), mockUsers)

	rv, err := service.Create(context.Background(), CreateReviewRequest{
		ListingID:  listingID,
		ReviewerID: 3,
		Rating:     5,
		Comment:    "Great stay",
	})

	assert.NoError(t, err)
	assert.NotNil(t, rv)
	assert.Equal(t, 5, rv.Rating)
	mockReviews.AssertExpectations(t)
}

func TestService_Create_RejectsRatingOutOfRange(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockListingGate), new(MockBookingGate), new(MockUserRepository))

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Create(context.Background(), CreateReviewRequest{
			ListingID:  uuid.New(),
			ReviewerID: 3,
			Rating:     rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestService_Create_ListingNotFound(t *testing.T) {
	mockListings := new(MockListingGate)

	listingID := uuid.New()
	mockListings.On("GetByID", mock.Anything, listingID).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockReviewRepository), mockListings, new(MockBookingGate), new(MockUserRepository))

	_, err := service.Create(context.Background(), CreateReviewRequest{
		ListingID:  listingID,
		ReviewerID: 3,
		Rating:     4,
	})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_Create_BookingBelongsToDifferentGuest(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingGate)
	mockBookings := new(MockBookingGate)
	mockUsers := new(MockUserRepository)

	listingID := uuid.New()
	bookingID := uuid.New()
	mockListings.On("GetByID", mock.Anything, listingID).Return(&domain.Listing{ID: listingID}, nil)
	mockUsers.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID:        bookingID,
		ListingID: listingID,
		GuestID:   8, // someone else's stay
	}, nil)

	service := NewService(mockReviews, mockListings, mockBookings, mockUsers)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		ListingID:  listingID,
		ReviewerID: 3,
		BookingID:  &bookingID,
		Rating:     4,
	})

	assert.ErrorIs(t, err, ErrBookingMismatch)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateMapsToConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"postgres typed error", &pgconn.PgError{Code: "23505", ConstraintName: "idx_one_review_per_reviewer"}},
		{"sqlite message", errors.New("constraint failed: UNIQUE constraint failed: reviews.listing_id, reviews.reviewer_id")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockListings := new(MockListingGate)
			mockUsers := new(MockUserRepository)

			listingID := uuid.New()
			mockListings.On("GetByID", mock.Anything, listingID).Return(&domain.Listing{ID: listingID}, nil)
			mockUsers.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
			mockReviews.On("Create", mock.Anything, mock.Anything).Return(tc.err)

			service := NewService(mockReviews, mockListings, new(MockBookingGate), mockUsers)

			_, err := service.Create(context.Background(), CreateReviewRequest{
				ListingID:  listingID,
				ReviewerID: 3,
				Rating:     4,
			})
			assert.ErrorIs(t, err, ErrConflict)
		})
	}
}

func TestService_Update_ChangesRatingAndComment(t *testing.T) {
	mockReviews := new(MockReviewRepository)

	existing := &domain.Review{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		ReviewerID: 3,
		Rating:     2,
		Comment:    "Too noisy",
	}
	mockReviews.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	mockReviews.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReviews, new(MockListingGate), new(MockBookingGate), new(MockUserRepository))

	rv, err := service.Update(context.Background(), existing.ID, UpdateReviewRequest{
		Rating:  4,
		Comment: "Better on a second stay",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, rv.Rating)
	assert.Equal(t, "Better on a second stay", rv.Comment)
}

func TestService_Get_NotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)

	id := uuid.New()
	mockReviews.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockReviews, new(MockListingGate), new(MockBookingGate), new(MockUserRepository))

	_, err := service.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
