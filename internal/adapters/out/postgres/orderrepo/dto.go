// Package orderrepo persists food order aggregates. It maps the aggregate to
// an orders row plus one order_items row per line, and carries the atomic
// conditional update behind the driver claim protocol.
package orderrepo

import (
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of a food order.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(32);index"`

	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`

	SpecialInstructions string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt   time.Time
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Lines are written once at creation and
// never updated.
type OrderItemDTO struct {
	ID                  uint            `gorm:"primaryKey;autoIncrement"`
	OrderID             uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID          uuid.UUID       `gorm:"type:uuid"`
	Quantity            int             `gorm:"not null"`
	UnitPrice           decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal           decimal.Decimal `gorm:"type:numeric(12,2)"`
	SpecialInstructions string
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var lat, lng *float64
	if location := aggregate.DeliveryLocation(); location != nil {
		latVal, lngVal := location.Latitude(), location.Longitude()
		lat, lng = &latVal, &lngVal
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:             aggregate.ID().Bytes(),
			MenuItemID:          item.MenuItemID().Bytes(),
			Quantity:            item.Quantity(),
			UnitPrice:           item.UnitPrice(),
			LineTotal:           item.LineTotal(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		DriverID:            driverID,
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryLat:         lat,
		DeliveryLng:         lng,
		Subtotal:            totals.Subtotal,
		DeliveryFee:         totals.DeliveryFee,
		Tax:                 totals.Tax,
		Total:               totals.Total,
		SpecialInstructions: aggregate.SpecialInstructions(),
		Items:               items,
		CreatedAt:           aggregate.CreatedAt(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
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

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.DeliveryLat != nil && dto.DeliveryLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, order.RestoreItem(
			menuItemID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.LineTotal,
			itemDTO.SpecialInstructions,
		))
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, driverID, status,
		dto.DeliveryAddress, location, items,
		order.Totals{
			Subtotal:    dto.Subtotal,
			DeliveryFee: dto.DeliveryFee,
			Tax:         dto.Tax,
			Total:       dto.Total,
		},
		dto.SpecialInstructions,
		dto.CreatedAt, dto.ConfirmedAt, dto.DeliveredAt,
	)
}
