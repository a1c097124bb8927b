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

// GetParcelQueryHandler loads one parcel and checks that the requester is a
// party to it.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel reads.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns the parcel, or NotFound when it does not exist and
// Forbidden when the requester is neither sender nor assigned driver.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context, query GetParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, sender_id, driver_id, status,
			recipient_name, recipient_phone,
			pickup_address, delivery_address,
			description, size, weight_kg,
			delivery_fee, estimated_distance_km,
			created_at, picked_up_at, delivered_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Row()

	var (
		id, senderID            uuid.UUID
		driverID                uuid.NullUUID
		status, name, phone     string
		pickup, dropoff         string
		description, size       string
		weightKg                *float64
		fee                     decimal.Decimal
		distanceKm              float64
		createdAt               time.Time
		pickedUpAt, deliveredAt *time.Time
	)
	if err := row.Scan(
		&id, &senderID, &driverID, &status,
		&name, &phone, &pickup, &dropoff,
		&description, &size, &weightKg,
		&fee, &distanceKm,
		&createdAt, &pickedUpAt, &deliveredAt,
	); err != nil {
		return ParcelResponse{}, errs.NewObjectNotFoundErrorWithCause("parcelID", query.ParcelID(), err)
	}

	response := ParcelResponse{
		Status:              status,
		RecipientName:       name,
		RecipientPhone:      phone,
		PickupAddress:       pickup,
		DeliveryAddress:     dropoff,
		Description:         description,
		Size:                size,
		WeightKg:            weightKg,
		DeliveryFee:         fee,
		EstimatedDistanceKm: distanceKm,
		CreatedAt:           createdAt,
		PickedUpAt:          pickedUpAt,
		DeliveredAt:         deliveredAt,
	}

	var err error
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if response.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if driverID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		response.DriverID = &parsed
	}

	visible := query.RequestedBy().IsEqual(response.SenderID) ||
		(response.DriverID != nil && query.RequestedBy().IsEqual(*response.DriverID))
	if !visible {
		return ParcelResponse{}, errs.NewForbiddenError(
			query.RequestedBy().String(), "view", "parcel "+response.ID.String())
	}

	return response, nil
}
