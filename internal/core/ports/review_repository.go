package ports

import (
	"context"

	"deliverymarket/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. The store enforces one review per
	// (reviewer, job, target type); a duplicate insert surfaces as
	// errs.AlreadyReviewedError.
	Add(ctx context.Context, entity *review.Review) error
}
