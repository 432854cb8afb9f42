package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/internal/domain"
)

type ListingFilters struct {
	Location     string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Available    *bool
	Limit        int
	Offset       int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetAll returns listings with optional filters, newest first.
func (r *ListingRepository) GetAll(
	ctx context.Context,
	f ListingFilters,
) ([]domain.Listing, int64, error) {

	var listings []domain.Listing
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Listing{})

	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}

	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}

	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}

	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}

	if f.Available != nil {
		q = q.Where("is_available = ?", *f.Available)
	}

	q.Count(&total)

	err := q.
		Preload("Host").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&listings).Error

	return listings, total, err
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var listing domain.Listing

	err := r.db.WithContext(ctx).
		Preload("Host").
		Where("listing_id = ?", id).
		First(&listing).Error

	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) Save(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

// Delete removes a listing together with its bookings and reviews in one
// transaction, so a half-deleted listing is never observable.
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}

		res := tx.Where("listing_id = ?", id).Delete(&domain.Listing{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

type ReviewStats struct {
	Count         int64
	AverageRating float64
}

// GetReviewStats aggregates review count and mean rating for a listing.
func (r *ListingRepository) GetReviewStats(ctx context.Context, id uuid.UUID) (ReviewStats, error) {
	var row struct {
		Cnt int64
		Avg float64
	}

	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg").
		Where("listing_id = ?", id).
		Scan(&row).Error

	if err != nil {
		return ReviewStats{}, err
	}
	return ReviewStats{Count: row.Cnt, AverageRating: row.Avg}, nil
}
