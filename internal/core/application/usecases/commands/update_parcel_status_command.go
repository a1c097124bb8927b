package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents the assigned driver moving a parcel
// along its lifecycle.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	driverID kernel.UUID
	status   parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to advance a parcel's
// status. The raw status token is parsed and validated here.
func NewUpdateParcelStatusCommand(
	parcelID, driverID kernel.UUID, rawStatus string,
) (UpdateParcelStatusCommand, error) {
	status, err := parcel.ParseStatus(rawStatus)
	if err != nil {
		return UpdateParcelStatusCommand{}, err
	}
	if err = errors.Join(parcelID.Validate(), driverID.Validate()); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		parcelID: parcelID,
		driverID: driverID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel being updated.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// DriverID returns the driver requesting the update.
func (c UpdateParcelStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the requested target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}
