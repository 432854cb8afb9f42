package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/internal/domain"
)

type BookingFilters struct {
	ListingID uuid.UUID
	GuestID   int64
	Status    string
	Limit     int
	Offset    int
}

// BookingListRow is the denormalized shape used by list views: the
// listing title and guest name are joined in so clients do not need a
// second round trip.
type BookingListRow struct {
	ID              uuid.UUID `gorm:"column:booking_id"`
	ListingTitle    string    `gorm:"column:listing_title"`
	GuestName       string    `gorm:"column:guest_name"`
	CheckInDate     time.Time `gorm:"column:check_in_date"`
	CheckOutDate    time.Time `gorm:"column:check_out_date"`
	NumberOfGuests  int       `gorm:"column:number_of_guests"`
	TotalPrice      float64   `gorm:"column:total_price"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking

	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Guest").
		Where("booking_id = ?", id).
		First(&b).Error

	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAll returns booking list rows with optional filters, newest first.
func (r *BookingRepository) GetAll(
	ctx context.Context,
	f BookingFilters,
) ([]BookingListRow, int64, error) {

	var rows []BookingListRow
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if f.ListingID != uuid.Nil {
		q = q.Where("bookings.listing_id = ?", f.ListingID)
	}

	if f.GuestID > 0 {
		q = q.Where("bookings.guest_id = ?", f.GuestID)
	}

	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}

	q.Count(&total)

	err := q.
		Select(`bookings.booking_id, bookings.check_in_date, bookings.check_out_date,
bookings.number_of_guests, bookings.total_price, bookings.status, bookings.created_at,
listings.title AS listing_title,
(users.first_name || ' ' || users.last_name) AS guest_name`).
		Joins("JOIN listings ON listings.listing_id = bookings.listing_id").
		Joins("JOIN users ON users.id = bookings.guest_id").
		Order("bookings.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&rows).Error

	return rows, total, err
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("booking_id = ?", id).Delete(&domain.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
