package ports

import (
	"context"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateIfStatus persists changes to an existing parcel aggregate only if
	// the stored row is still in the given status. Returns false, without
	// error, when a concurrent writer moved the parcel on since it was read;
	// the caller treats that as a conflict.
	UpdateIfStatus(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) (bool, error)

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// ClaimIfUnassigned persists the aggregate's driver assignment and status
	// only if the stored row still has no driver and is pending. Returns
	// false, without error, when the conditional update matched no row.
	ClaimIfUnassigned(ctx context.Context, aggregate *parcel.Parcel) (bool, error)
}
