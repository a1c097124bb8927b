package ports

import (
	"context"

	"deliverymarket/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Restaurant is the catalog read model consulted when pricing an order.
type Restaurant struct {
	ID          kernel.UUID
	Name        string
	IsActive    bool
	DeliveryFee decimal.Decimal
}

// MenuItem is the catalog read model for a single orderable item.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        decimal.Decimal
	IsAvailable  bool
}

// Catalog provides read access to restaurants and their menus. Order
// creation validates every requested item against it and prices lines
// from the catalog, never from client input.
type Catalog interface {
	// GetRestaurant retrieves a restaurant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	GetRestaurant(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// GetMenuItems retrieves the requested menu items. Items missing from
	// the result were not found; the caller decides how to report them.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]MenuItem, error)
}
