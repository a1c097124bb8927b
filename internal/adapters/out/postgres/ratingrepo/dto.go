package ratingrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverProfileDTO is the database representation of a driver profile. The
// profile row shares its ID with the driver's user record; only the rating
// and delivery counters are owned by this part of the system.
type DriverProfileDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleType     string          `gorm:"type:varchar(32)"`
	LicensePlate    string          `gorm:"type:varchar(16)"`
	IsAvailable     bool            `gorm:"default:true"`
	RatingAverage   decimal.Decimal `gorm:"type:numeric(2,1);default:0"`
	RatingCount     int             `gorm:"default:0"`
	TotalDeliveries int             `gorm:"default:0"`
}

// TableName overrides GORM's default naming to use "driver_profiles".
func (DriverProfileDTO) TableName() string {
	return "driver_profiles"
}
