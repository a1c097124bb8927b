package ports

import (
	"context"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/review"
)

// RatingRepository maintains the denormalized rating aggregates kept on
// restaurants and driver profiles.
type RatingRepository interface {
	// RecomputeRating recalculates the target's average rating from all of
	// its stored reviews, rounded to one decimal place, in a single
	// statement. Called inside the same transaction that inserts a review
	// so the average never drifts from the review set.
	RecomputeRating(ctx context.Context, target review.TargetType, targetID kernel.UUID) error

	// IncrementCompletedDeliveries bumps the driver's delivery counter by
	// one. The increment happens in the database so concurrent deliveries
	// do not lose updates.
	IncrementCompletedDeliveries(ctx context.Context, driverID kernel.UUID) error

	// RecomputeAllRatings refreshes every restaurant and driver rating from
	// the review table. Used by the reconciliation job as a safety net.
	RecomputeAllRatings(ctx context.Context) error
}
