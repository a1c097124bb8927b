package queries

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableParcelsQueryIsNotConstructed = errors.New(
	"GetAvailableParcelsQuery must be created via NewGetAvailableParcelsQuery constructor",
)

// GetAvailableParcelsQuery retrieves the parcels a driver can claim:
// unassigned parcels still in pending status.
type GetAvailableParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableParcelsQuery creates a query for claimable parcels.
func NewGetAvailableParcelsQuery() GetAvailableParcelsQuery {
	return GetAvailableParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableParcelsQueryIsNotConstructed)
}

// AvailableParcelResponse is one claimable parcel as shown to drivers.
type AvailableParcelResponse struct {
	ID                  kernel.UUID
	Status              string
	PickupAddress       string
	DeliveryAddress     string
	Size                string
	DeliveryFee         decimal.Decimal
	EstimatedDistanceKm float64
	CreatedAt           time.Time
}
