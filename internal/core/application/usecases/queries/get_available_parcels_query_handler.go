package queries

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableParcelsQueryHandler lists unclaimed parcels from the database.
type GetAvailableParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableParcelsQueryHandler creates a handler for the claimable parcel view.
func NewGetAvailableParcelsQueryHandler(db *gorm.DB) GetAvailableParcelsQueryHandler {
	return GetAvailableParcelsQueryHandler{db: db}
}

// Handle returns unassigned pending parcels, oldest first.
func (h GetAvailableParcelsQueryHandler) Handle(
	ctx context.Context, query GetAvailableParcelsQuery,
) ([]AvailableParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]AvailableParcelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			pickup_address,
			delivery_address,
			size,
			delivery_fee,
			estimated_distance_km,
			created_at
		FROM parcels
		WHERE driver_id IS NULL AND status = ?
		ORDER BY created_at
	`, parcel.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                             uuid.UUID
			status, pickup, delivery, size string
			fee                            decimal.Decimal
			distanceKm                     float64
			createdAt                      time.Time
		)
		if err = rows.Scan(&id, &status, &pickup, &delivery, &size, &fee, &distanceKm, &createdAt); err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parcels = append(parcels, AvailableParcelResponse{
			ID:                  parcelID,
			Status:              status,
			PickupAddress:       pickup,
			DeliveryAddress:     delivery,
			Size:                size,
			DeliveryFee:         fee,
			EstimatedDistanceKm: distanceKm,
			CreatedAt:           createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
