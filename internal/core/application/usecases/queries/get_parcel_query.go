package queries

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel. Visibility is restricted to the
// sender and the assigned driver.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for a single parcel.
func NewGetParcelQuery(parcelID, requestedBy kernel.UUID) (GetParcelQuery, error) {
	if err := errors.Join(parcelID.Validate(), requestedBy.Validate()); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID:    parcelID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// RequestedBy returns the actor asking for the parcel.
func (q GetParcelQuery) RequestedBy() kernel.UUID {
	return q.requestedBy
}

// ParcelResponse is the full parcel detail shown to its parties.
type ParcelResponse struct {
	ID                  kernel.UUID
	SenderID            kernel.UUID
	DriverID            *kernel.UUID
	Status              string
	RecipientName       string
	RecipientPhone      string
	PickupAddress       string
	DeliveryAddress     string
	Description         string
	Size                string
	WeightKg            *float64
	DeliveryFee         decimal.Decimal
	EstimatedDistanceKm float64
	CreatedAt           time.Time
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
}
