package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrRecipientNameIsRequired  = errors.New("recipient name is required")
	ErrRecipientPhoneIsRequired = errors.New("recipient phone is required")
	ErrPickupAddressIsRequired  = errors.New("pickup address is required")
	ErrDropoffAddressIsRequired = errors.New("delivery address is required")
	ErrWeightIsInvalid          = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a sender's request for a point-to-point
// parcel delivery. Waypoint coordinates are optional; when either endpoint
// lacks them the fee is priced from the default distance estimate.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	senderID    kernel.UUID
	recipient   parcel.Recipient
	pickup      parcel.Waypoint
	delivery    parcel.Waypoint
	description string
	size        parcel.Size
	weightKg    *float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to request a parcel delivery.
// The raw size token is parsed here; weight, when supplied, must be positive.
func NewCreateParcelCommand(
	parcelID, senderID kernel.UUID,
	recipient parcel.Recipient,
	pickup, delivery parcel.Waypoint,
	description string,
	rawSize string,
	weightKg *float64,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	size, err := parcel.ParseSize(rawSize)
	if err != nil {
		return CreateParcelCommand{}, err
	}
	command.size = size

	if err := errors.Join(
		command.setIDs(parcelID, senderID),
		command.setRecipient(recipient),
		command.setWaypoints(pickup, delivery),
		command.setWeight(weightKg),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderID returns the requesting sender.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Recipient returns the recipient contact details.
func (c CreateParcelCommand) Recipient() parcel.Recipient {
	return c.recipient
}

// Pickup returns the pickup waypoint.
func (c CreateParcelCommand) Pickup() parcel.Waypoint {
	return c.pickup
}

// Delivery returns the delivery waypoint.
func (c CreateParcelCommand) Delivery() parcel.Waypoint {
	return c.delivery
}

// Description returns the optional parcel description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Size returns the parsed size classification.
func (c CreateParcelCommand) Size() parcel.Size {
	return c.size
}

// WeightKg returns the declared weight, or nil when not provided.
func (c CreateParcelCommand) WeightKg() *float64 {
	return c.weightKg
}

func (c *CreateParcelCommand) setIDs(parcelID, senderID kernel.UUID) error {
	if err := errors.Join(parcelID.Validate(), senderID.Validate()); err != nil {
		return err
	}

	c.parcelID = parcelID
	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient parcel.Recipient) error {
	if recipient.Name == "" {
		return ErrRecipientNameIsRequired
	}
	if recipient.Phone == "" {
		return ErrRecipientPhoneIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setWaypoints(pickup, delivery parcel.Waypoint) error {
	if pickup.Address == "" {
		return ErrPickupAddressIsRequired
	}
	if delivery.Address == "" {
		return ErrDropoffAddressIsRequired
	}
	for _, location := range []*kernel.GeoPoint{pickup.Location, delivery.Location} {
		if location != nil {
			if err := location.Validate(); err != nil {
				return err
			}
		}
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}

func (c *CreateParcelCommand) setWeight(weightKg *float64) error {
	if weightKg != nil && *weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}
