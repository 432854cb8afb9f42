package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == uuid.Nil {
		b.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context, f repository.BookingFilters) ([]repository.BookingListRow, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.BookingListRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
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

func newTestListing(price float64, maxGuests int, available bool) *domain.Listing {
	return &domain.Listing{
		ID:            uuid.New(),
		Title:         "Luxury Downtown Apartment",
		PricePerNight: price,
		MaxGuests:     maxGuests,
		IsAvailable:   available,
	}
}

func TestService_Create_ComputesTotalPrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockUsers := new(MockUserRepository)

	l := newTestListing(150.0, 4, true)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)
	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockListings, mockUsers)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:      l.ID,
		GuestID:        7,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-13",
		NumberOfGuests: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 450.0, b.TotalPrice)
	assert.Equal(t, 3, b.Nights())
	assert.Equal(t, domain.BookingPending, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_RejectsCheckOutNotAfterCheckIn(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockListingRepository), new(MockUserRepository))

	req := CreateBookingRequest{
		ListingID:    uuid.New(),
		GuestID:      7,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-10",
	}
	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	req.CheckOutDate = "2026-09-08"
	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RejectsBadDateFormat(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockListingRepository), new(MockUserRepository))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:    uuid.New(),
		GuestID:      7,
		CheckInDate:  "10/09/2026",
		CheckOutDate: "2026-09-13",
	})
	assert.ErrorIs(t, err, ErrBadDate)
	assert.NotErrorIs(t, err, ErrValidation, "format errors must not read as ordering errors")
}

func TestService_Create_RejectsCapacityExceeded(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockUsers := new(MockUserRepository)

	l := newTestListing(100.0, 2, true)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)

	service := NewService(mockBookings, mockListings, mockUsers)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:      l.ID,
		GuestID:        7,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 3,
	})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsUnavailableListing(t *testing.T) {
	mockListings := new(MockListingRepository)

	l := newTestListing(100.0, 4, false)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)

	service := NewService(new(MockBookingRepository), mockListings, new(MockUserRepository))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:      l.ID,
		GuestID:        7,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_Create_ListingNotFound(t *testing.T) {
	mockListings := new(MockListingRepository)

	id := uuid.New()
	mockListings.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockBookingRepository), mockListings, new(MockUserRepository))

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:      id,
		GuestID:        7,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
	})

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_Create_GuestNotFound(t *testing.T) {
	mockListings := new(MockListingRepository)
	mockUsers := new(MockUserRepository)

	l := newTestListing(100.0, 4, true)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)
	mockUsers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockBookingRepository), mockListings, mockUsers)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ListingID:      l.ID,
		GuestID:        99,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
	})

	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestService_Patch_RecomputesTotalOnDateChange(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	l := newTestListing(150.0, 4, true)
	existing := &domain.Booking{
		ID:             uuid.New(),
		ListingID:      l.ID,
		GuestID:        7,
		CheckInDate:    mustDate(t, "2026-09-10"),
		CheckOutDate:   mustDate(t, "2026-09-12"),
		NumberOfGuests: 2,
		TotalPrice:     300.0,
		Status:         domain.BookingPending,
	}

	mockBookings.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)
	mockBookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockListings, new(MockUserRepository))

	newOut := "2026-09-15"
	b, err := service.Patch(context.Background(), existing.ID, PatchBookingRequest{
		CheckOutDate: &newOut,
	})

	assert.NoError(t, err)
	assert.Equal(t, 750.0, b.TotalPrice)
	assert.Equal(t, 5, b.Nights())
}

func TestService_Patch_RejectsInvalidStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	l := newTestListing(150.0, 4, true)
	existing := &domain.Booking{
		ID:           uuid.New(),
		ListingID:    l.ID,
		CheckInDate:  mustDate(t, "2026-09-10"),
		CheckOutDate: mustDate(t, "2026-09-12"),
	}

	mockBookings.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	mockListings.On("GetByID", mock.Anything, l.ID).Return(l, nil)

	service := NewService(mockBookings, mockListings, new(MockUserRepository))

	bad := "rebooked"
	_, err := service.Patch(context.Background(), existing.ID, PatchBookingRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	id := uuid.New()
	mockBookings.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockListingRepository), new(MockUserRepository))

	err := service.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func mustDate(t *testing.T, v string) (d time.Time) {
	t.Helper()
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}
