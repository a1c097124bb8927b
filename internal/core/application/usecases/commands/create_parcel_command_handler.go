package commands

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/core/domain/services"
)

// CreateParcelCommandHandler registers a new parcel delivery. The distance
// between the waypoints is estimated once, the fee computed from it and the
// parcel size, and both are stamped immutably on the parcel.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle prices and persists the parcel in pending status, returning it.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	distanceKm := services.EstimateDistanceKm(cmd.Pickup().Location, cmd.Delivery().Location)
	fee := services.PriceParcel(distanceKm, cmd.Size())

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(), cmd.SenderID(),
		cmd.Recipient(), cmd.Pickup(), cmd.Delivery(),
		cmd.Description(), cmd.Size(), cmd.WeightKg(),
		fee, distanceKm, time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
