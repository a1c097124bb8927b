package commands_test

import (
	"testing"

	"deliverymarket/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileRatingsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("RecomputeAllRatings", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, commands.NewReconcileRatingsCommand()))

	ratingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileRatingsCommandHandler_Handle_RecomputeFails(t *testing.T) {
	ctx := t.Context()

	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	ratingRepo.On("RecomputeAllRatings", mock.Anything).Return(assert.AnError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, commands.NewReconcileRatingsCommand()), assert.AnError)

	uow.AssertExpectations(t)
}

func TestReconcileRatingsCommand_ZeroValue_FailsValidation(t *testing.T) {
	var cmd commands.ReconcileRatingsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrReconcileRatingsCommandIsNotConstructed)
}
