package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"
)

var ErrCancelFoodOrderCommandIsNotConstructed = errors.New(
	"CancelFoodOrderCommand must be created via NewCancelFoodOrderCommand constructor",
)

// CancelFoodOrderCommand represents a customer's request to cancel their
// food order before the restaurant starts preparing it.
type CancelFoodOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelFoodOrderCommand creates a command to cancel a food order.
func NewCancelFoodOrderCommand(orderID, requestedBy kernel.UUID) (CancelFoodOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), requestedBy.Validate()); err != nil {
		return CancelFoodOrderCommand{}, err
	}

	return CancelFoodOrderCommand{
		orderID:     orderID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelFoodOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelFoodOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelFoodOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the actor asking for the cancellation.
func (c CancelFoodOrderCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}
