package queries

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFoodOrderQueryHandler loads one order with its line items and checks
// that the requester is a party to it.
type GetFoodOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetFoodOrderQueryHandler creates a handler for single-order reads.
func NewGetFoodOrderQueryHandler(db *gorm.DB) GetFoodOrderQueryHandler {
	return GetFoodOrderQueryHandler{db: db}
}

// Handle returns the order, or NotFound when it does not exist and Forbidden
// when the requester is neither customer, restaurant nor assigned driver.
func (h GetFoodOrderQueryHandler) Handle(
	ctx context.Context, query GetFoodOrderQuery,
) (FoodOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return FoodOrderResponse{}, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return FoodOrderResponse{}, err
	}

	visible := query.RequestedBy().IsEqual(response.CustomerID) ||
		query.RequestedBy().IsEqual(response.RestaurantID) ||
		(response.DriverID != nil && query.RequestedBy().IsEqual(*response.DriverID))
	if !visible {
		return FoodOrderResponse{}, errs.NewForbiddenError(
			query.RequestedBy().String(), "view", "order "+response.ID.String())
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return FoodOrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetFoodOrderQueryHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (FoodOrderResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, customer_id, restaurant_id, driver_id, status,
			delivery_address, subtotal, delivery_fee, tax, total,
			created_at, confirmed_at, delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id, customerID, restaurantID uuid.UUID
		driverID                     uuid.NullUUID
		status, address              string
		subtotal, fee, tax, total    decimal.Decimal
		createdAt                    time.Time
		confirmedAt, deliveredAt     *time.Time
	)
	if err := row.Scan(
		&id, &customerID, &restaurantID, &driverID, &status,
		&address, &subtotal, &fee, &tax, &total,
		&createdAt, &confirmedAt, &deliveredAt,
	); err != nil {
		return FoodOrderResponse{}, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, err)
	}

	response := FoodOrderResponse{
		Status:          status,
		DeliveryAddress: address,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Tax:             tax,
		Total:           total,
		CreatedAt:       createdAt,
		ConfirmedAt:     confirmedAt,
		DeliveredAt:     deliveredAt,
	}

	var err error
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return FoodOrderResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return FoodOrderResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return FoodOrderResponse{}, err
	}
	if driverID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return FoodOrderResponse{}, idErr
		}
		response.DriverID = &parsed
	}

	return response, nil
}

func (h GetFoodOrderQueryHandler) loadItems(
	ctx context.Context, orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, quantity, unit_price, line_total, special_instructions
		FROM order_items
		WHERE order_id = ?
		ORDER BY menu_item_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			menuItemID           uuid.UUID
			quantity             int
			unitPrice, lineTotal decimal.Decimal
			instructions         string
		)
		if err = rows.Scan(&menuItemID, &quantity, &unitPrice, &lineTotal, &instructions); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			MenuItemID:          id,
			Quantity:            quantity,
			UnitPrice:           unitPrice,
			LineTotal:           lineTotal,
			SpecialInstructions: instructions,
		})
	}

	return items, rows.Err()
}
