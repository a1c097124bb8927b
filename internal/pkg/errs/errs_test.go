package errs_test

import (
	"errors"
	"testing"

	"deliverymarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("latitude")
	assert.Equal(t, "value is invalid: latitude", err.Error())

	withCause := errs.NewValueIsInvalidErrorWithCause("latitude", errors.New("out of bounds"))
	assert.Equal(t, "value is invalid: latitude (cause: out of bounds)", withCause.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, withCause.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

	assert.Equal(t, "rating", err.ParamName)
	assert.Equal(t, 6, err.Value)
	assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("recipientName")

	assert.Equal(t, "value is required: recipientName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("user-1", "cancel", "order-2")

	assert.Equal(t, "forbidden: user-1 may not cancel order-2", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("delivered", "cancel")

	assert.Equal(t, "invalid transition: cannot cancel from status delivered", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestInvalidItemError(t *testing.T) {
	err := errs.NewInvalidItemError("item-9", "not available")

	assert.Equal(t, "invalid item: item-9 (not available)", err.Error())
	assert.Equal(t, errs.ErrInvalidItem, err.Unwrap())
}

func TestAlreadyReviewedError(t *testing.T) {
	err := errs.NewAlreadyReviewedError("user-1", "order-2")

	assert.Equal(t, "already reviewed: reviewer user-1 already reviewed job order-2", err.Error())
	assert.Equal(t, errs.ErrAlreadyReviewed, err.Unwrap())
}

func TestAlreadyAssignedError(t *testing.T) {
	err := errs.NewAlreadyAssignedError("parcel-3")

	assert.Equal(t, "already assigned: job parcel-3 already has a driver", err.Error())
	assert.Equal(t, errs.ErrAlreadyAssigned, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("lat"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewForbiddenError("a", "b", "c"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "claim"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewInvalidItemError("i", "r"), errs.ErrInvalidItem)
	require.ErrorIs(t, errs.NewAlreadyReviewedError("a", "b"), errs.ErrAlreadyReviewed)
	require.ErrorIs(t, errs.NewAlreadyAssignedError("j"), errs.ErrAlreadyAssigned)
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("orderId", "bad\nid")
	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "bad id")
}
