package parcel_test

import (
	"testing"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(),
		parcel.Recipient{Name: "Dana", Phone: "+15550100"},
		parcel.Waypoint{Address: "1 Depot Road"},
		parcel.Waypoint{Address: "9 Harbor Lane"},
		"documents", parcel.SizeSmall, nil,
		decimal.RequireFromString("15.00"), 5.0, time.Now(),
	)
	require.NoError(t, err)
	return p
}

func claimedParcel(t *testing.T, driverID kernel.UUID) *parcel.Parcel {
	t.Helper()

	p := newTestParcel(t)
	require.NoError(t, p.Claim(driverID))
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("creates_pending_unassigned_parcel", func(t *testing.T) {
		p := newTestParcel(t)

		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.Driver())
		assert.Nil(t, p.PickedUpAt())
		assert.Nil(t, p.DeliveredAt())
		assert.Equal(t, 5.0, p.EstimatedDistanceKm())
	})

	t.Run("requires_recipient_and_addresses", func(t *testing.T) {
		tests := []struct {
			name      string
			recipient parcel.Recipient
			pickup    string
			delivery  string
		}{
			{"missing_recipient_name", parcel.Recipient{Phone: "+15550100"}, "a", "b"},
			{"missing_recipient_phone", parcel.Recipient{Name: "Dana"}, "a", "b"},
			{"missing_pickup_address", parcel.Recipient{Name: "Dana", Phone: "+15550100"}, "", "b"},
			{"missing_delivery_address", parcel.Recipient{Name: "Dana", Phone: "+15550100"}, "a", ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parcel.NewParcel(
					kernel.NewUUID(), kernel.NewUUID(), tt.recipient,
					parcel.Waypoint{Address: tt.pickup},
					parcel.Waypoint{Address: tt.delivery},
					"", parcel.SizeSmall, nil,
					decimal.RequireFromString("15.00"), 5.0, time.Now(),
				)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("rejects_unknown_size", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(),
			parcel.Recipient{Name: "Dana", Phone: "+15550100"},
			parcel.Waypoint{Address: "a"}, parcel.Waypoint{Address: "b"},
			"", parcel.Size("huge"), nil,
			decimal.RequireFromString("15.00"), 5.0, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_weight", func(t *testing.T) {
		weight := 0.0
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(),
			parcel.Recipient{Name: "Dana", Phone: "+15550100"},
			parcel.Waypoint{Address: "a"}, parcel.Waypoint{Address: "b"},
			"", parcel.SizeSmall, &weight,
			decimal.RequireFromString("15.00"), 5.0, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseSize(t *testing.T) {
	for token, want := range map[string]string{
		"small": "1", "medium": "1.5", "large": "2",
	} {
		size, err := parcel.ParseSize(token)
		require.NoError(t, err)
		assert.True(t, size.FeeMultiplier().Equal(decimal.RequireFromString(want)), token)
	}

	_, err := parcel.ParseSize("tiny")
	require.Error(t, err)
}

func TestParcel_Cancel(t *testing.T) {
	t.Run("sender_cancels_pending", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.Cancel(p.SenderID()))
		assert.Equal(t, parcel.StatusCancelled, p.Status())
	})

	t.Run("sender_cancels_assigned", func(t *testing.T) {
		p := claimedParcel(t, kernel.NewUUID())

		require.NoError(t, p.Cancel(p.SenderID()))
		assert.Equal(t, parcel.StatusCancelled, p.Status())
		assert.NotNil(t, p.Driver(), "cancellation does not unassign")
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		p := newTestParcel(t)

		require.ErrorIs(t, p.Cancel(kernel.NewUUID()), errs.ErrForbidden)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})

	t.Run("cancel_after_pickup_is_invalid_transition", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)
		_, err := p.UpdateStatus(driver, parcel.StatusPickedUp, time.Now())
		require.NoError(t, err)

		err = p.Cancel(p.SenderID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, parcel.StatusPickedUp, p.Status())
	})
}

func TestParcel_Claim(t *testing.T) {
	t.Run("claim_pending_advances_to_assigned", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)

		assert.Equal(t, parcel.StatusAssigned, p.Status())
		require.NotNil(t, p.Driver())
		assert.True(t, driver.IsEqual(*p.Driver()))
	})

	t.Run("second_claim_fails_with_already_assigned", func(t *testing.T) {
		winner := kernel.NewUUID()
		p := claimedParcel(t, winner)

		err := p.Claim(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		assert.True(t, winner.IsEqual(*p.Driver()))
	})

	t.Run("claim_cancelled_is_invalid_transition", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Cancel(p.SenderID()))

		require.ErrorIs(t, p.Claim(kernel.NewUUID()), errs.ErrInvalidTransition)
	})
}

func TestParcel_UpdateStatus(t *testing.T) {
	t.Run("pickup_stamps_time_once", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)
		pickupAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

		justDelivered, err := p.UpdateStatus(driver, parcel.StatusPickedUp, pickupAt)

		require.NoError(t, err)
		assert.False(t, justDelivered)
		require.NotNil(t, p.PickedUpAt())
		assert.Equal(t, pickupAt, *p.PickedUpAt())
	})

	t.Run("forward_jump_to_delivered_reports_first_entry", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)

		justDelivered, err := p.UpdateStatus(driver, parcel.StatusDelivered, time.Now())

		require.NoError(t, err)
		assert.True(t, justDelivered)
		require.NotNil(t, p.DeliveredAt())
	})

	t.Run("repeated_delivered_is_noop", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)
		_, err := p.UpdateStatus(driver, parcel.StatusDelivered, time.Now())
		require.NoError(t, err)
		firstStamp := *p.DeliveredAt()

		justDelivered, err := p.UpdateStatus(driver, parcel.StatusDelivered, time.Now().Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, justDelivered)
		assert.Equal(t, firstStamp, *p.DeliveredAt())
	})

	t.Run("backward_move_is_invalid", func(t *testing.T) {
		driver := kernel.NewUUID()
		p := claimedParcel(t, driver)
		_, err := p.UpdateStatus(driver, parcel.StatusInTransit, time.Now())
		require.NoError(t, err)

		_, err = p.UpdateStatus(driver, parcel.StatusPickedUp, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unassigned_driver_is_forbidden", func(t *testing.T) {
		p := claimedParcel(t, kernel.NewUUID())

		_, err := p.UpdateStatus(kernel.NewUUID(), parcel.StatusPickedUp, time.Now())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
