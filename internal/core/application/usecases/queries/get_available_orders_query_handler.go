package queries

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists unclaimed food orders from the
// database. The same condition guards the claim's conditional update, so an
// order shown here may still be lost to a faster driver.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the claimable order view.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns unassigned orders in confirmed or ready status, oldest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context, query GetAvailableOrdersQuery,
) ([]AvailableOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AvailableOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			delivery_address,
			total,
			created_at
		FROM orders
		WHERE driver_id IS NULL AND status IN (?, ?)
		ORDER BY created_at
	`, order.StatusConfirmed, order.StatusReady).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, restaurantID uuid.UUID
			status, address  string
			total            decimal.Decimal
			createdAt        time.Time
		)
		if err = rows.Scan(&id, &restaurantID, &status, &address, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, AvailableOrderResponse{
			ID:              orderID,
			RestaurantID:    restID,
			Status:          status,
			DeliveryAddress: address,
			Total:           total,
			CreatedAt:       createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
