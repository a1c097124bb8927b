package commands_test

import (
	"testing"

	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewFoodOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	stored := storedOrder(t, customerID, restaurantID, &driverID, order.StatusDelivered)

	cmd, err := commands.NewReviewFoodOrderCommand(stored.ID(), customerID, 4, "great burgers")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	ratings := new(MockRatingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("RatingRepository").Return(ratings).Once(),
		ratings.On("RecomputeRating", mock.Anything, review.TargetRestaurant, restaurantID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewFoodOrderCommandHandler(factory)
	entity, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, review.TargetRestaurant, entity.TargetType())
	assert.True(t, entity.TargetID().IsEqual(restaurantID))
	assert.True(t, entity.JobID().IsEqual(stored.ID()))
	assert.Equal(t, 4, entity.Rating())

	ratings.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewFoodOrderCommandHandler_Handle_NotYetDelivered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := storedOrder(t, customerID, kernel.NewUUID(), nil, order.StatusConfirmed)

	cmd, err := commands.NewReviewFoodOrderCommand(stored.ID(), customerID, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewFoodOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestReviewFoodOrderCommandHandler_Handle_ForbiddenForStranger(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, kernel.NewUUID(), kernel.NewUUID(), nil, order.StatusDelivered)

	cmd, err := commands.NewReviewFoodOrderCommand(stored.ID(), kernel.NewUUID(), 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewFoodOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestReviewFoodOrderCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := storedOrder(t, customerID, kernel.NewUUID(), nil, order.StatusDelivered)

	cmd, err := commands.NewReviewFoodOrderCommand(stored.ID(), customerID, 3, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("ReviewRepository").Return(reviewRepo).Once()
	reviewRepo.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewAlreadyReviewedError(customerID.String(), stored.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewFoodOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyReviewed)
}

func TestReviewFoodOrderCommand_RejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		_, err := commands.NewReviewFoodOrderCommand(kernel.NewUUID(), kernel.NewUUID(), rating, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}
