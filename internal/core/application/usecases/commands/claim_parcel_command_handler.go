package commands

import (
	"context"

	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/errs"
)

// ClaimParcelCommandHandler assigns a driver to a pending parcel. As with
// order claims, the decisive write is a single conditional update so that
// concurrent claimers cannot both succeed.
type ClaimParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewClaimParcelCommandHandler creates a handler for parcel claims.
func NewClaimParcelCommandHandler(uowFactory ParcelUoWFactory) ClaimParcelCommandHandler {
	return ClaimParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the parcel in assigned status.
func (h ClaimParcelCommandHandler) Handle(
	ctx context.Context, cmd ClaimParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		aggregate, claimed, err := h.attempt(ctx, cmd)
		if err != nil {
			return nil, err
		}
		if claimed {
			return aggregate, nil
		}
	}

	return nil, errs.NewAlreadyAssignedError(cmd.ParcelID().String())
}

func (h ClaimParcelCommandHandler) attempt(
	ctx context.Context, cmd ClaimParcelCommand,
) (*parcel.Parcel, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, false, err
	}

	if err = aggregate.Claim(cmd.DriverID()); err != nil {
		return nil, false, err
	}

	claimed, err := parcelRepo.ClaimIfUnassigned(ctx, aggregate)
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		return nil, false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return aggregate, true, nil
}
