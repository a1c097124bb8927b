package commands

import (
	"errors"

	"deliverymarket/internal/pkg/guard"
)

var ErrReconcileRatingsCommandIsNotConstructed = errors.New(
	"ReconcileRatingsCommand must be created via NewReconcileRatingsCommand constructor",
)

// ReconcileRatingsCommand triggers a full recomputation of every restaurant
// and driver rating from the stored reviews. Ratings are kept current
// per-review at write time; the sweep repairs any drift left behind by
// partial failures.
type ReconcileRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRatingsCommand creates a command to reconcile all ratings.
func NewReconcileRatingsCommand() ReconcileRatingsCommand {
	return ReconcileRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRatingsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRatingsCommandIsNotConstructed)
}
