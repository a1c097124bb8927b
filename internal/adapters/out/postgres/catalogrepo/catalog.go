package catalogrepo

import (
	"context"
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/ports"
	"deliverymarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog implements ports.Catalog using GORM.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM catalog reader.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetRestaurant retrieves a restaurant by ID.
func (c *GormCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return ports.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurantID", id.String())
		}
		return ports.Restaurant{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:          restaurantID,
		Name:        dto.Name,
		IsActive:    dto.IsActive,
		DeliveryFee: dto.DeliveryFee,
	}, nil
}

// GetMenuItems retrieves the requested menu items. IDs that match no row
// are simply absent from the result.
func (c *GormCatalog) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]ports.MenuItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := c.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]ports.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
		if err != nil {
			return nil, err
		}

		items = append(items, ports.MenuItem{
			ID:           id,
			RestaurantID: restaurantID,
			Name:         dto.Name,
			Price:        dto.Price,
			IsAvailable:  dto.IsAvailable,
		})
	}

	return items, nil
}
