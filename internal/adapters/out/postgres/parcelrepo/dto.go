// Package parcelrepo persists parcel aggregates.
package parcelrepo

import (
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the database representation of a parcel delivery.
type ParcelDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
	Status   string     `gorm:"type:varchar(32);index"`

	RecipientName  string
	RecipientPhone string

	PickupAddress   string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64

	Description string
	Size        string `gorm:"type:varchar(16)"`
	WeightKg    *float64

	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	EstimatedDistanceKm float64

	CreatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := ParcelDTO{
		ID:                  aggregate.ID().Bytes(),
		SenderID:            aggregate.SenderID().Bytes(),
		DriverID:            driverID,
		Status:              aggregate.Status().String(),
		RecipientName:       aggregate.Recipient().Name,
		RecipientPhone:      aggregate.Recipient().Phone,
		PickupAddress:       aggregate.Pickup().Address,
		DeliveryAddress:     aggregate.Delivery().Address,
		Description:         aggregate.Description(),
		Size:                aggregate.Size().String(),
		WeightKg:            aggregate.WeightKg(),
		DeliveryFee:         aggregate.DeliveryFee(),
		EstimatedDistanceKm: aggregate.EstimatedDistanceKm(),
		CreatedAt:           aggregate.CreatedAt(),
		PickedUpAt:          aggregate.PickedUpAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}

	if location := aggregate.Pickup().Location; location != nil {
		lat, lng := location.Latitude(), location.Longitude()
		dto.PickupLat, dto.PickupLng = &lat, &lng
	}
	if location := aggregate.Delivery().Location; location != nil {
		lat, lng := location.Latitude(), location.Longitude()
		dto.DeliveryLat, dto.DeliveryLng = &lat, &lng
	}

	return dto
}

func waypointFromColumns(address string, lat, lng *float64) (parcel.Waypoint, error) {
	waypoint := parcel.Waypoint{Address: address}
	if lat != nil && lng != nil {
		point, err := kernel.NewGeoPoint(*lat, *lng)
		if err != nil {
			return parcel.Waypoint{}, err
		}
		waypoint.Location = &point
	}
	return waypoint, nil
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &parsed
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	size, err := parcel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	pickup, err := waypointFromColumns(dto.PickupAddress, dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	delivery, err := waypointFromColumns(dto.DeliveryAddress, dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, senderID, driverID, status,
		parcel.Recipient{Name: dto.RecipientName, Phone: dto.RecipientPhone},
		pickup, delivery,
		dto.Description, size, dto.WeightKg,
		dto.DeliveryFee, dto.EstimatedDistanceKm,
		dto.CreatedAt, dto.PickedUpAt, dto.DeliveredAt,
	)
}
