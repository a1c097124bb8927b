package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"
)

var ErrClaimParcelCommandIsNotConstructed = errors.New(
	"ClaimParcelCommand must be created via NewClaimParcelCommand constructor",
)

// ClaimParcelCommand represents a driver's attempt to take a pending parcel.
// At most one driver ever wins a given parcel.
type ClaimParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimParcelCommand creates a command for a driver to claim a parcel.
func NewClaimParcelCommand(parcelID, driverID kernel.UUID) (ClaimParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), driverID.Validate()); err != nil {
		return ClaimParcelCommand{}, err
	}

	return ClaimParcelCommand{
		parcelID: parcelID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimParcelCommand) Validate() error {
	return c.guard.Validate(ErrClaimParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel being claimed.
func (c ClaimParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// DriverID returns the claiming driver.
func (c ClaimParcelCommand) DriverID() kernel.UUID {
	return c.driverID
}
