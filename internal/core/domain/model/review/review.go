// Package review contains the Review entity attached to completed jobs and
// the TargetType discriminator that points a review at a restaurant or a
// driver. The at-most-one-review-per-(reviewer, job, target-type) rule is
// enforced by a storage unique constraint; the entity here only validates
// local invariants such as the rating range.
package review

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"
)

const (
	// MinRating and MaxRating bound the inclusive 1..5 star scale.
	MinRating = 1
	MaxRating = 5
)

// TargetType discriminates what a review is about.
type TargetType string

const (
	TargetRestaurant TargetType = "restaurant"
	TargetDriver     TargetType = "driver"
)

// Validate checks that the target type is restaurant or driver.
func (t TargetType) Validate() error {
	if t != TargetRestaurant && t != TargetDriver {
		return errs.NewValueIsInvalidError("review target type " + string(t))
	}
	return nil
}

// String returns the wire token for the target type.
func (t TargetType) String() string {
	return string(t)
}

// Review is a rating left by a job's requester after delivery. It keeps a
// back-reference to the job that justified it, so the uniqueness rule and
// audits can tie every rating to a concrete delivery.
type Review struct {
	id         kernel.UUID
	reviewerID kernel.UUID
	targetType TargetType
	targetID   kernel.UUID
	jobID      kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewReview creates a review after validating the rating range and all
// identifiers. Ownership and delivered-status checks belong to the job
// aggregates; this constructor assumes the caller performed them.
func NewReview(
	id, reviewerID kernel.UUID,
	targetType TargetType,
	targetID, jobID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		reviewerID.Validate(),
		targetType.Validate(),
		targetID.Validate(),
		jobID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:            id,
		reviewerID:    reviewerID,
		targetType:    targetType,
		targetID:      targetID,
		jobID:         jobID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReview rehydrates a review from persistence.
func RestoreReview(
	id, reviewerID kernel.UUID,
	targetType TargetType,
	targetID, jobID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) *Review {
	return &Review{
		id:            id,
		reviewerID:    reviewerID,
		targetType:    targetType,
		targetID:      targetID,
		jobID:         jobID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

// Validate ensures the Review was created via NewReview or RestoreReview.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return errs.NewValueIsRequiredError("Review must be created via NewReview")
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ReviewerID returns the requester who left the review.
func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// TargetType returns what kind of entity is being rated.
func (r *Review) TargetType() TargetType {
	return r.targetType
}

// TargetID returns the rated restaurant or driver.
func (r *Review) TargetID() kernel.UUID {
	return r.targetID
}

// JobID returns the delivered job that justified this review.
func (r *Review) JobID() kernel.UUID {
	return r.jobID
}

// Rating returns the 1..5 star value.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-form comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
