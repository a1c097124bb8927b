package ports

import (
	"context"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for food order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists changes to an existing order aggregate only if
	// the stored row is still in the given status. Returns false, without
	// error, when a concurrent writer moved the order on since it was read;
	// the caller treats that as a conflict.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimIfUnassigned persists the aggregate's driver assignment and status
	// only if the stored row still has no driver and is in a claimable status.
	// The write is a single conditional update so concurrent claimers cannot
	// both succeed. Returns false, without error, when the guard did not match
	// and the caller should re-read the aggregate to find out why.
	ClaimIfUnassigned(ctx context.Context, aggregate *order.Order) (bool, error)
}
