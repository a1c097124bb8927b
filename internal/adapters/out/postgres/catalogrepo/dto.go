// Package catalogrepo reads restaurants and menu items. Order placement
// treats the catalog as the source of truth for prices and availability.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO is the database representation of a restaurant.
type RestaurantDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Address       string
	IsActive      bool            `gorm:"default:true;index"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(12,2)"`
	RatingAverage decimal.Decimal `gorm:"type:numeric(2,1);default:0"`
	RatingCount   int             `gorm:"default:0"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the database representation of one orderable menu item.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"not null"`
	Description  string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsAvailable  bool            `gorm:"default:true"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}
