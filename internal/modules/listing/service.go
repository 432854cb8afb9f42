package listing

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	listings ListingRepository
	users    UserRepository
}

func NewService(listings ListingRepository, users UserRepository) *Service {
	return &Service{listings: listings, users: users}
}

func (s *Service) List(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error) {
	return s.listings.GetAll(ctx, f)
}

func (s *Service) Create(ctx context.Context, req CreateListingRequest) (*domain.Listing, error) {
	if req.PricePerNight <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, req.HostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}

	l := &domain.Listing{
		Title:         req.Title,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Location:      req.Location,
		PropertyType:  domain.PropertyApartment,
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     2,
		Amenities:     req.Amenities,
		HostID:        req.HostID,
		IsAvailable:   true,
	}

	if req.PropertyType != "" {
		if !domain.PropertyType(req.PropertyType).Valid() {
			return nil, ErrValidation
		}
		l.PropertyType = domain.PropertyType(req.PropertyType)
	}
	if req.Bedrooms > 0 {
		l.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms > 0 {
		l.Bathrooms = req.Bathrooms
	}
	if req.MaxGuests > 0 {
		l.MaxGuests = req.MaxGuests
	}
	if req.IsAvailable != nil {
		l.IsAvailable = *req.IsAvailable
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the listing with its review aggregates.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ListingDetail, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stats, err := s.listings.GetReviewStats(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{Listing: *l, ReviewsCount: stats.Count}
	if stats.Count > 0 {
		avg := math.Round(stats.AverageRating*10) / 10
		detail.AverageRating = &avg
	}
	return detail, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.PricePerNight <= 0 {
		return nil, ErrValidation
	}

	if req.HostID != l.HostID {
		if _, err := s.users.GetByID(ctx, req.HostID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHostNotFound
			}
			return nil, err
		}
	}

	l.Title = req.Title
	l.Description = req.Description
	l.PricePerNight = req.PricePerNight
	l.Location = req.Location
	l.Amenities = req.Amenities
	l.HostID = req.HostID
	l.Host = nil

	if req.PropertyType != "" {
		if !domain.PropertyType(req.PropertyType).Valid() {
			return nil, ErrValidation
		}
		l.PropertyType = domain.PropertyType(req.PropertyType)
	}
	if req.Bedrooms > 0 {
		l.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms > 0 {
		l.Bathrooms = req.Bathrooms
	}
	if req.MaxGuests > 0 {
		l.MaxGuests = req.MaxGuests
	}
	if req.IsAvailable != nil {
		l.IsAvailable = *req.IsAvailable
	}

	if err := s.listings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Patch(ctx context.Context, id uuid.UUID, req PatchListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		l.PricePerNight = *req.PricePerNight
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.PropertyType != nil {
		if !domain.PropertyType(*req.PropertyType).Valid() {
			return nil, ErrValidation
		}
		l.PropertyType = domain.PropertyType(*req.PropertyType)
	}
	if req.Bedrooms != nil {
		if *req.Bedrooms <= 0 {
			return nil, ErrValidation
		}
		l.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if *req.Bathrooms <= 0 {
			return nil, ErrValidation
		}
		l.Bathrooms = *req.Bathrooms
	}
	if req.MaxGuests != nil {
		if *req.MaxGuests <= 0 {
			return nil, ErrValidation
		}
		l.MaxGuests = *req.MaxGuests
	}
	if req.Amenities != nil {
		l.Amenities = *req.Amenities
	}
	if req.HostID != nil && *req.HostID != l.HostID {
		if _, err := s.users.GetByID(ctx, *req.HostID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHostNotFound
			}
			return nil, err
		}
		l.HostID = *req.HostID
		l.Host = nil
	}
	if req.IsAvailable != nil {
		l.IsAvailable = *req.IsAvailable
	}

	if err := s.listings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
