// Package commands contains the write-side operations of the marketplace
// core. Each command validates its input at construction, and each handler
// runs its mutations inside a unit of work so a failed step leaves nothing
// behind.
package commands

import (
	"context"

	"deliverymarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare only the repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// creation, cancellation and claims.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// OrderFulfillmentUoW covers order status updates, which touch the
	// driver's delivery counter when an order reaches delivered.
	OrderFulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	// OrderFulfillmentUoWFactory creates order fulfillment unit of work instances.
	OrderFulfillmentUoWFactory interface {
		Create() OrderFulfillmentUoW
	}

	// ParcelFulfillmentUoW covers parcel status updates.
	ParcelFulfillmentUoW interface {
		TxManager
		ParcelRepoFactory
		RatingRepoFactory
	}

	// ParcelFulfillmentUoWFactory creates parcel fulfillment unit of work instances.
	ParcelFulfillmentUoWFactory interface {
		Create() ParcelFulfillmentUoW
	}

	// OrderReviewUoW covers restaurant reviews: the order is read for
	// authorization, the review inserted, and the restaurant's rating
	// recomputed, all in one transaction.
	OrderReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
		RatingRepoFactory
	}

	// OrderReviewUoWFactory creates order review unit of work instances.
	OrderReviewUoWFactory interface {
		Create() OrderReviewUoW
	}

	// ParcelReviewUoW covers driver reviews attached to parcels.
	ParcelReviewUoW interface {
		TxManager
		ParcelRepoFactory
		ReviewRepoFactory
		RatingRepoFactory
	}

	// ParcelReviewUoWFactory creates parcel review unit of work instances.
	ParcelReviewUoWFactory interface {
		Create() ParcelReviewUoW
	}

	// RatingUoW covers the rating reconciliation sweep, which touches only
	// the rating repository.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
	}

	// RatingUoWFactory creates rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
