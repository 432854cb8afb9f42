package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	bookings BookingRepository
	listings ListingRepository
	users    UserRepository
}

func NewService(bookings BookingRepository, listings ListingRepository, users UserRepository) *Service {
	return &Service{bookings: bookings, listings: listings, users: users}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, checkOut, err := parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !l.IsAvailable {
		return nil, ErrNotAvailable
	}

	guests := req.NumberOfGuests
	if guests == 0 {
		guests = 1
	}
	if guests > l.MaxGuests {
		return nil, ErrCapacityExceeded
	}

	if _, err := s.users.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	status := domain.BookingPending
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
	}

	b := &domain.Booking{
		ListingID:       l.ID,
		GuestID:         req.GuestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  guests,
		TotalPrice:      totalPrice(l.PricePerNight, checkIn, checkOut),
		Status:          status,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Listing = l
	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f repository.BookingFilters) ([]BookingListItem, int64, error) {
	rows, total, err := s.bookings.GetAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]BookingListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingListItem{
			BookingID:      r.ID,
			ListingTitle:   r.ListingTitle,
			GuestName:      r.GuestName,
			CheckInDate:    r.CheckInDate.Format(dateLayout),
			CheckOutDate:   r.CheckOutDate.Format(dateLayout),
			Nights:         int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24),
			NumberOfGuests: r.NumberOfGuests,
			TotalPrice:     r.TotalPrice,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, total, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	checkIn, checkOut, err := parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	l, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}
	if req.NumberOfGuests > l.MaxGuests {
		return nil, ErrCapacityExceeded
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	b.NumberOfGuests = req.NumberOfGuests
	b.Status = domain.BookingStatus(req.Status)
	b.SpecialRequests = req.SpecialRequests
	b.TotalPrice = totalPrice(l.PricePerNight, checkIn, checkOut)

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	b.Listing = l
	return b, nil
}

func (s *Service) Patch(ctx context.Context, id uuid.UUID, req PatchBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	checkIn := b.CheckInDate
	checkOut := b.CheckOutDate
	datesChanged := false

	if req.CheckInDate != nil {
		checkIn, err = parseDate(*req.CheckInDate)
		if err != nil {
			return nil, ErrBadDate
		}
		datesChanged = true
	}
	if req.CheckOutDate != nil {
		checkOut, err = parseDate(*req.CheckOutDate)
		if err != nil {
			return nil, ErrBadDate
		}
		datesChanged = true
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	l, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}

	if req.NumberOfGuests != nil {
		if *req.NumberOfGuests <= 0 {
			return nil, ErrInvalidGuests
		}
		if *req.NumberOfGuests > l.MaxGuests {
			return nil, ErrCapacityExceeded
		}
		b.NumberOfGuests = *req.NumberOfGuests
	}
	if req.Status != nil {
		if !domain.BookingStatus(*req.Status).Valid() {
			return nil, ErrInvalidStatus
		}
		b.Status = domain.BookingStatus(*req.Status)
	}
	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	if datesChanged {
		b.TotalPrice = totalPrice(l.PricePerNight, checkIn, checkOut)
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	b.Listing = l
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, v)
}

func parseStay(in, out string) (time.Time, time.Time, error) {
	checkIn, err := parseDate(in)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	checkOut, err := parseDate(out)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return checkIn, checkOut, nil
}

// totalPrice is nightly price times nights, rounded to cents. Clients
// never supply it.
func totalPrice(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	nights := checkOut.Sub(checkIn).Hours() / 24
	total := pricePerNight * nights
	return math.Round(total*100) / 100
}
