package reviewrepo

import (
	"context"
	"errors"

	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
// Requires the connection to be opened with TranslateError so a unique
// violation arrives as gorm.ErrDuplicatedKey.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add inserts the review. A duplicate (reviewer, job, target type) insert
// is reported as AlreadyReviewed.
func (r *GormReviewRepository) Add(ctx context.Context, entity *review.Review) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyReviewedError(entity.ReviewerID().String(), entity.JobID().String())
		}
		return err
	}

	return nil
}
