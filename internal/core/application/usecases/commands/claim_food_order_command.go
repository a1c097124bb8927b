package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"
)

var ErrClaimFoodOrderCommandIsNotConstructed = errors.New(
	"ClaimFoodOrderCommand must be created via NewClaimFoodOrderCommand constructor",
)

// ClaimFoodOrderCommand represents a driver's attempt to take an unclaimed
// food order. At most one driver ever wins a given order.
type ClaimFoodOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimFoodOrderCommand creates a command for a driver to claim an order.
func NewClaimFoodOrderCommand(orderID, driverID kernel.UUID) (ClaimFoodOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return ClaimFoodOrderCommand{}, err
	}

	return ClaimFoodOrderCommand{
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimFoodOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimFoodOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimFoodOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the claiming driver.
func (c ClaimFoodOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}
