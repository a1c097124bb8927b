package queries

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFoodOrderQueryIsNotConstructed = errors.New(
	"GetFoodOrderQuery must be created via NewGetFoodOrderQuery constructor",
)

// GetFoodOrderQuery retrieves one food order with its line items. Visibility
// is restricted to the parties of the order: the customer, the restaurant
// and the assigned driver.
type GetFoodOrderQuery struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFoodOrderQuery creates a query for a single food order.
func NewGetFoodOrderQuery(orderID, requestedBy kernel.UUID) (GetFoodOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requestedBy.Validate()); err != nil {
		return GetFoodOrderQuery{}, err
	}

	return GetFoodOrderQuery{
		orderID:     orderID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFoodOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetFoodOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestedBy returns the actor asking for the order.
func (q GetFoodOrderQuery) RequestedBy() kernel.UUID {
	return q.requestedBy
}

// OrderItemResponse is one order line in a food order response.
type OrderItemResponse struct {
	MenuItemID          kernel.UUID
	Quantity            int
	UnitPrice           decimal.Decimal
	LineTotal           decimal.Decimal
	SpecialInstructions string
}

// FoodOrderResponse is the full order detail shown to its parties.
type FoodOrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	DriverID        *kernel.UUID
	Status          string
	DeliveryAddress string
	Items           []OrderItemResponse
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
}
