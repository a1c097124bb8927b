package commands_test

import (
	"testing"

	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	stored := storedParcel(t, kernel.NewUUID(), nil, parcel.StatusPending)

	cmd, err := commands.NewClaimParcelCommand(stored.ID(), driverID)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("ClaimIfUnassigned", mock.Anything, stored).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimParcelCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.StatusAssigned, aggregate.Status())
	require.NotNil(t, aggregate.Driver())
	assert.True(t, aggregate.Driver().IsEqual(driverID))
}

func TestClaimParcelCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	winner := kernel.NewUUID()

	pending := storedParcel(t, senderID, nil, parcel.StatusPending)
	assigned := storedParcel(t, senderID, &winner, parcel.StatusAssigned)

	cmd, err := commands.NewClaimParcelCommand(pending.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("ParcelRepository").Return(repo).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	repo.On("ClaimIfUnassigned", mock.Anything, pending).Return(false, nil).Once()
	repo.On("Get", mock.Anything, pending.ID()).Return(assigned, nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewClaimParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAlreadyAssigned)

	repo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimParcelCommandHandler_Handle_CancelledParcel(t *testing.T) {
	ctx := t.Context()
	stored := storedParcel(t, kernel.NewUUID(), nil, parcel.StatusCancelled)

	cmd, err := commands.NewClaimParcelCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
