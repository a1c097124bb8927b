// Package ratingrepo maintains the denormalized rating columns on
// restaurants and driver profiles. Every write is a single SQL statement
// whose value is computed in the database, so concurrent reviews or
// deliveries cannot lose updates to a read-modify-write race.
package ratingrepo

import (
	"context"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

func ratedTable(target review.TargetType) (string, error) {
	switch target {
	case review.TargetRestaurant:
		return "restaurants", nil
	case review.TargetDriver:
		return "driver_profiles", nil
	default:
		return "", errs.NewValueIsInvalidError("targetType " + target.String())
	}
}

// RecomputeRating refreshes the target's average from its full review set,
// rounded to one decimal place. Averaging over all rows rather than folding
// the new rating into a running mean keeps the result independent of
// insertion order and correct if reviews are ever deleted.
func (r *GormRatingRepository) RecomputeRating(
	ctx context.Context, target review.TargetType, targetID kernel.UUID,
) error {
	table, err := ratedTable(target)
	if err != nil {
		return err
	}

	// Lock the target row before recomputing. Under read committed a
	// concurrent reviewer's UPDATE could otherwise resume after this
	// transaction commits but average over its older statement snapshot,
	// briefly caching a value that misses the latest rating. The lock makes
	// the recompute take its snapshot after the other writer committed.
	err = r.db.WithContext(ctx).Exec(
		`SELECT id FROM `+table+` WHERE id = ? FOR UPDATE`, targetID.Bytes(),
	).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE `+table+` SET
			rating_average = COALESCE((
				SELECT ROUND(AVG(rating)::numeric, 1)
				FROM reviews
				WHERE target_type = ? AND target_id = ?
			), 0),
			rating_count = (
				SELECT COUNT(*)
				FROM reviews
				WHERE target_type = ? AND target_id = ?
			)
		WHERE id = ?
	`, target.String(), targetID.Bytes(), target.String(), targetID.Bytes(), targetID.Bytes()).Error
}

// IncrementCompletedDeliveries bumps the driver's delivery counter in place.
func (r *GormRatingRepository) IncrementCompletedDeliveries(ctx context.Context, driverID kernel.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE driver_profiles
		SET total_deliveries = total_deliveries + 1
		WHERE id = ?
	`, driverID.Bytes()).Error
}

// RecomputeAllRatings refreshes every rated entity from the review table.
// The reconciliation job runs this as a safety net against any drift.
func (r *GormRatingRepository) RecomputeAllRatings(ctx context.Context) error {
	for target, table := range map[string]string{
		review.TargetRestaurant.String(): "restaurants",
		review.TargetDriver.String():     "driver_profiles",
	} {
		err := r.db.WithContext(ctx).Exec(`
			UPDATE `+table+` SET
				rating_average = COALESCE((
					SELECT ROUND(AVG(rating)::numeric, 1)
					FROM reviews
					WHERE target_type = ? AND target_id = `+table+`.id
				), 0),
				rating_count = (
					SELECT COUNT(*)
					FROM reviews
					WHERE target_type = ? AND target_id = `+table+`.id
				)
		`, target, target).Error
		if err != nil {
			return err
		}
	}
	return nil
}
