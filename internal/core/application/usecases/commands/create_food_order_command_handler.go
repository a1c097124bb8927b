package commands

import (
	"context"
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/services"
	"deliverymarket/internal/core/ports"
	"deliverymarket/internal/pkg/errs"
)

// CreateFoodOrderCommandHandler places a new food order. Every requested
// line is resolved against the catalog so the customer can neither order
// from another restaurant's menu nor dictate prices, and the financial
// totals are stamped immutably before the order is persisted.
type CreateFoodOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.Catalog
}

// NewCreateFoodOrderCommandHandler creates a handler for order placement.
func NewCreateFoodOrderCommandHandler(
	uowFactory OrderUoWFactory, catalog ports.Catalog,
) CreateFoodOrderCommandHandler {
	return CreateFoodOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle validates the requested items against the catalog, prices the
// order, and persists it in pending status. Returns the created order.
func (h CreateFoodOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateFoodOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurant",
			errors.New("restaurant is not accepting orders"))
	}

	items, err := h.buildItems(ctx, cmd)
	if err != nil {
		return nil, err
	}

	totals := services.PriceFoodOrder(items, restaurant.DeliveryFee)

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(),
		cmd.DeliveryAddress(), cmd.DeliveryLocation(),
		items, totals, cmd.Instructions(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// buildItems resolves each requested line against the catalog and prices it
// from the stored menu, never from client input.
func (h CreateFoodOrderCommandHandler) buildItems(
	ctx context.Context, cmd CreateFoodOrderCommand,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, request := range cmd.Items() {
		ids = append(ids, request.MenuItemID)
	}

	menuItems, err := h.catalog.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]ports.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID] = menuItem
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, request := range cmd.Items() {
		menuItem, ok := byID[request.MenuItemID]
		if !ok {
			return nil, errs.NewInvalidItemError(request.MenuItemID.String(), "menu item not found")
		}
		if !menuItem.RestaurantID.IsEqual(cmd.RestaurantID()) {
			return nil, errs.NewInvalidItemError(request.MenuItemID.String(),
				"menu item belongs to another restaurant")
		}
		if !menuItem.IsAvailable {
			return nil, errs.NewInvalidItemError(request.MenuItemID.String(), "menu item is unavailable")
		}
		if request.Quantity < 1 {
			return nil, errs.NewInvalidItemError(request.MenuItemID.String(), "quantity must be at least 1")
		}

		item, err := order.NewItem(menuItem.ID, request.Quantity, menuItem.Price, request.SpecialInstructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
