package commands

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/pkg/errs"
)

// UpdateFoodOrderStatusCommandHandler advances a food order's status on
// behalf of its assigned driver. The first transition into delivered also
// bumps the driver's completed-delivery counter; repeating the delivered
// status later never bumps it again.
type UpdateFoodOrderStatusCommandHandler struct {
	uowFactory OrderFulfillmentUoWFactory
}

// NewUpdateFoodOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateFoodOrderStatusCommandHandler(
	uowFactory OrderFulfillmentUoWFactory,
) UpdateFoodOrderStatusCommandHandler {
	return UpdateFoodOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated order.
func (h UpdateFoodOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateFoodOrderStatusCommand,
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

	justDelivered, err := aggregate.UpdateStatus(cmd.DriverID(), cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateIfStatus(ctx, aggregate, readStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// A concurrent update landed between the read and the write. The
		// guard keeps racing delivered calls from double-counting.
		return nil, errs.NewInvalidTransitionError(readStatus.String(), "update")
	}

	if justDelivered {
		if err = uow.RatingRepository().IncrementCompletedDeliveries(ctx, cmd.DriverID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
