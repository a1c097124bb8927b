package review_test

import (
	"testing"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("creates_valid_review", func(t *testing.T) {
		r, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(),
			review.TargetRestaurant,
			kernel.NewUUID(), kernel.NewUUID(),
			4, "great pad thai", time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 4, r.Rating())
		assert.Equal(t, review.TargetRestaurant, r.TargetType())
	})

	t.Run("rating_bounds_are_inclusive", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			_, err := review.NewReview(
				kernel.NewUUID(), kernel.NewUUID(), review.TargetDriver,
				kernel.NewUUID(), kernel.NewUUID(), rating, "", time.Now(),
			)
			require.NoError(t, err, rating)
		}
	})

	t.Run("rejects_out_of_range_rating", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := review.NewReview(
				kernel.NewUUID(), kernel.NewUUID(), review.TargetDriver,
				kernel.NewUUID(), kernel.NewUUID(), rating, "", time.Now(),
			)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, rating)
		}
	})

	t.Run("rejects_unknown_target_type", func(t *testing.T) {
		_, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), review.TargetType("courier"),
			kernel.NewUUID(), kernel.NewUUID(), 3, "", time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_identifiers", func(t *testing.T) {
		_, err := review.NewReview(
			kernel.UUID{}, kernel.NewUUID(), review.TargetDriver,
			kernel.NewUUID(), kernel.NewUUID(), 3, "", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestReview_Validate_ZeroValue(t *testing.T) {
	var r review.Review
	require.Error(t, r.Validate())
}
