package commands

import (
	"context"
)

// ReconcileRatingsCommandHandler runs the periodic rating reconciliation
// sweep over all rated parties.
type ReconcileRatingsCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewReconcileRatingsCommandHandler creates a handler for rating reconciliation.
func NewReconcileRatingsCommandHandler(uowFactory RatingUoWFactory) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes every stored rating from the review table.
func (h ReconcileRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileRatingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RatingRepository().RecomputeAllRatings(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
