package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"
)

var (
	ErrCreateFoodOrderCommandIsNotConstructed = errors.New(
		"CreateFoodOrderCommand must be created via NewCreateFoodOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrItemsAreRequired          = errors.New("at least one item is required")
)

// OrderItemRequest is one requested order line. Quantity is validated here;
// price, availability and restaurant ownership are checked by the handler
// against the catalog.
type OrderItemRequest struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// CreateFoodOrderCommand represents a customer's request to place a food
// order with a restaurant.
type CreateFoodOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	restaurantID     kernel.UUID
	deliveryAddress  string
	deliveryLocation *kernel.GeoPoint
	items            []OrderItemRequest
	instructions     string

	guard guard.ConstructorGuard
}

// NewCreateFoodOrderCommand creates a command to place a food order.
// The delivery location is optional; the item list must be non-empty.
func NewCreateFoodOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	items []OrderItemRequest,
	instructions string,
) (CreateFoodOrderCommand, error) {
	command := CreateFoodOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(orderID, customerID, restaurantID),
		command.setDeliveryAddress(deliveryAddress),
		command.setDeliveryLocation(deliveryLocation),
		command.setItems(items),
	); err != nil {
		return CreateFoodOrderCommand{}, err
	}

	command.instructions = instructions
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateFoodOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c CreateFoodOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateFoodOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the destination address.
func (c CreateFoodOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryLocation returns the optional destination coordinates.
func (c CreateFoodOrderCommand) DeliveryLocation() *kernel.GeoPoint {
	return c.deliveryLocation
}

// Items returns the requested order lines.
func (c CreateFoodOrderCommand) Items() []OrderItemRequest {
	return c.items
}

// Instructions returns the optional order-level note.
func (c CreateFoodOrderCommand) Instructions() string {
	return c.instructions
}

func (c *CreateFoodOrderCommand) setIDs(orderID, customerID, restaurantID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateFoodOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateFoodOrderCommand) setDeliveryLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	c.deliveryLocation = location
	return nil
}

func (c *CreateFoodOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
