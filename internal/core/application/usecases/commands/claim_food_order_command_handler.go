package commands

import (
	"context"

	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/pkg/errs"
)

// maxClaimAttempts bounds the retry loop for claims that lose a conditional
// update to a concurrent writer. Each retry re-reads the job, so a loss to
// another driver surfaces as AlreadyAssigned on the next pass; the loop only
// spins when the job changed in some still-claimable way underneath us.
const maxClaimAttempts = 3

// ClaimFoodOrderCommandHandler assigns a driver to an unclaimed food order.
// The decisive write is a single conditional update in the repository, so
// when several drivers race for the same order exactly one of them wins and
// the rest receive AlreadyAssigned.
type ClaimFoodOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimFoodOrderCommandHandler creates a handler for order claims.
func NewClaimFoodOrderCommandHandler(uowFactory OrderUoWFactory) ClaimFoodOrderCommandHandler {
	return ClaimFoodOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the order with the driver attached.
// A claimed confirmed order advances to preparing; a ready order stays ready.
func (h ClaimFoodOrderCommandHandler) Handle(
	ctx context.Context, cmd ClaimFoodOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		aggregate, claimed, err := h.attempt(ctx, cmd)
		if err != nil {
			return nil, err
		}
		if claimed {
			return aggregate, nil
		}
	}

	return nil, errs.NewAlreadyAssignedError(cmd.OrderID().String())
}

// attempt runs one read-validate-claim cycle in its own transaction.
// Returns claimed=false without error only when the conditional update
// matched no row and the in-memory state still looked claimable.
func (h ClaimFoodOrderCommandHandler) attempt(
	ctx context.Context, cmd ClaimFoodOrderCommand,
) (*order.Order, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, false, err
	}

	if err = aggregate.Claim(cmd.DriverID()); err != nil {
		return nil, false, err
	}

	claimed, err := orderRepo.ClaimIfUnassigned(ctx, aggregate)
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		return nil, false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return aggregate, true, nil
}
