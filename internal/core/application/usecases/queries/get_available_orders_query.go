// Package queries contains the read-side operations of the marketplace
// core. Query handlers go straight to the database and return flat response
// models; they never load aggregates or mutate state.
package queries

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the food orders a driver can claim:
// unassigned orders in confirmed or ready status. This is the view drivers
// poll before invoking a claim.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for claimable food orders.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrderResponse is one claimable order as shown to drivers.
type AvailableOrderResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Status          string
	DeliveryAddress string
	Total           decimal.Decimal
	CreatedAt       time.Time
}
