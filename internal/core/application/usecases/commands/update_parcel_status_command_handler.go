package commands

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/errs"
)

// UpdateParcelStatusCommandHandler advances a parcel's status on behalf of
// its assigned driver. The first transition into delivered also bumps the
// driver's completed-delivery counter.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelFulfillmentUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for parcel status updates.
func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelFulfillmentUoWFactory,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated parcel.
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateParcelStatusCommand,
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

	justDelivered, err := aggregate.UpdateStatus(cmd.DriverID(), cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	updated, err := parcelRepo.UpdateIfStatus(ctx, aggregate, readStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// A concurrent update landed between the read and the write. The
		// guard keeps racing delivered calls from double-counting.
		return nil, errs.NewInvalidTransitionError(readStatus.String(), "update")
	}

	if justDelivered {
		if err = uow.RatingRepository().IncrementCompletedDeliveries(ctx, cmd.DriverID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
