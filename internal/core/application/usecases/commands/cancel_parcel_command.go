package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents a sender's request to cancel their parcel
// before a driver picks it up.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel delivery.
func NewCancelParcelCommand(parcelID, requestedBy kernel.UUID) (CancelParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), requestedBy.Validate()); err != nil {
		return CancelParcelCommand{}, err
	}

	return CancelParcelCommand{
		parcelID:    parcelID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to cancel.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RequestedBy returns the actor asking for the cancellation.
func (c CancelParcelCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}
