package commands

import (
	"context"

	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/errs"
)

// CancelParcelCommandHandler cancels a parcel on the sender's behalf. The
// aggregate enforces that only the sender may cancel and only while the
// parcel is pending or assigned.
type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCancelParcelCommandHandler creates a handler for parcel cancellation.
func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled parcel.
func (h CancelParcelCommandHandler) Handle(
	ctx context.Context, cmd CancelParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}
	readStatus := aggregate.Status()

	if err = aggregate.Cancel(cmd.RequestedBy()); err != nil {
		return nil, err
	}

	updated, err := parcelRepo.UpdateIfStatus(ctx, aggregate, readStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost to a concurrent claim or status update.
		return nil, errs.NewInvalidTransitionError(readStatus.String(), "cancel")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
