package commands

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"
)

// ReviewFoodOrderCommandHandler attaches a restaurant-targeted review to a
// delivered food order and recomputes the restaurant's average rating in
// the same transaction, so the stored average never drifts from the review
// set even under concurrent submissions.
type ReviewFoodOrderCommandHandler struct {
	uowFactory OrderReviewUoWFactory
}

// NewReviewFoodOrderCommandHandler creates a handler for order reviews.
func NewReviewFoodOrderCommandHandler(uowFactory OrderReviewUoWFactory) ReviewFoodOrderCommandHandler {
	return ReviewFoodOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review. Only the order's customer may review, only
// after delivery, and only once; a duplicate surfaces as AlreadyReviewed.
func (h ReviewFoodOrderCommandHandler) Handle(
	ctx context.Context, cmd ReviewFoodOrderCommand,
) (*review.Review, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.ReviewerID().IsEqual(aggregate.CustomerID()) {
		return nil, errs.NewForbiddenError(
			cmd.ReviewerID().String(), "review", "order "+aggregate.ID().String())
	}
	if aggregate.Status() != order.StatusDelivered {
		return nil, errs.NewInvalidTransitionError(aggregate.Status().String(), "review")
	}

	entity, err := review.NewReview(
		kernel.NewUUID(), cmd.ReviewerID(),
		review.TargetRestaurant, aggregate.RestaurantID(), aggregate.ID(),
		cmd.Rating(), cmd.Comment(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReviewRepository().Add(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().RecomputeRating(
		ctx, review.TargetRestaurant, aggregate.RestaurantID(),
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
