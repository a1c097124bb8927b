// Package reviewrepo persists reviews. The unique index over reviewer, job
// and target type is what makes review submission idempotent: the second
// insert for the same triple fails and surfaces as AlreadyReviewed.
package reviewrepo

import (
	"time"

	"deliverymarket/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the database representation of a review.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReviewerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_reviewer_job_target"`
	JobID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_reviewer_job_target"`
	TargetType string    `gorm:"type:varchar(16);uniqueIndex:idx_reviews_reviewer_job_target;index:idx_reviews_target,priority:1"`
	TargetID   uuid.UUID `gorm:"type:uuid;index:idx_reviews_target,priority:2"`
	Rating     int       `gorm:"not null"`
	Comment    string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(entity *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         entity.ID().Bytes(),
		ReviewerID: entity.ReviewerID().Bytes(),
		JobID:      entity.JobID().Bytes(),
		TargetType: entity.TargetType().String(),
		TargetID:   entity.TargetID().Bytes(),
		Rating:     entity.Rating(),
		Comment:    entity.Comment(),
		CreatedAt:  entity.CreatedAt(),
	}
}
