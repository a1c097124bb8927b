package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/pkg/guard"
)

var ErrUpdateFoodOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateFoodOrderStatusCommand must be created via NewUpdateFoodOrderStatusCommand constructor",
)

// UpdateFoodOrderStatusCommand represents the assigned driver moving a food
// order along its lifecycle.
type UpdateFoodOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateFoodOrderStatusCommand creates a command to advance an order's
// status. The raw status token is parsed and validated here.
func NewUpdateFoodOrderStatusCommand(
	orderID, driverID kernel.UUID, rawStatus string,
) (UpdateFoodOrderStatusCommand, error) {
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return UpdateFoodOrderStatusCommand{}, err
	}
	if err = errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return UpdateFoodOrderStatusCommand{}, err
	}

	return UpdateFoodOrderStatusCommand{
		orderID:  orderID,
		driverID: driverID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateFoodOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver requesting the update.
func (c UpdateFoodOrderStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the requested target status.
func (c UpdateFoodOrderStatusCommand) Status() order.Status {
	return c.status
}
