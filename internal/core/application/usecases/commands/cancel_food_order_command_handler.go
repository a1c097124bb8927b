package commands

import (
	"context"

	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/pkg/errs"
)

// CancelFoodOrderCommandHandler cancels a food order on the customer's
// behalf. The aggregate enforces that only the requester may cancel and
// only while the order is still pending or confirmed.
type CancelFoodOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelFoodOrderCommandHandler creates a handler for order cancellation.
func NewCancelFoodOrderCommandHandler(uowFactory OrderUoWFactory) CancelFoodOrderCommandHandler {
	return CancelFoodOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled order.
func (h CancelFoodOrderCommandHandler) Handle(
	ctx context.Context, cmd CancelFoodOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	readStatus := aggregate.Status()

	if err = aggregate.Cancel(cmd.RequestedBy()); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateIfStatus(ctx, aggregate, readStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost to a concurrent claim or status update.
		return nil, errs.NewInvalidTransitionError(readStatus.String(), "cancel")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
