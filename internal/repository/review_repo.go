package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/internal/domain"
)

type ReviewFilters struct {
	ListingID  uuid.UUID
	ReviewerID int64
	Limit      int
	Offset     int
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts the review; a duplicate (listing, reviewer) pair comes
// back as a unique-constraint error from the store.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var rv domain.Review

	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("review_id = ?", id).
		First(&rv).Error

	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// GetAll returns reviews with optional filters, newest first.
func (r *ReviewRepository) GetAll(
	ctx context.Context,
	f ReviewFilters,
) ([]domain.Review, int64, error) {

	var reviews []domain.Review
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Review{})

	if f.ListingID != uuid.Nil {
		q = q.Where("listing_id = ?", f.ListingID)
	}

	if f.ReviewerID > 0 {
		q = q.Where("reviewer_id = ?", f.ReviewerID)
	}

	q.Count(&total)

	err := q.
		Preload("Reviewer").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *ReviewRepository) Save(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("review_id = ?", id).Delete(&domain.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
