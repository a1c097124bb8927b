package commands

import (
	"context"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"
)

// ReviewParcelCommandHandler attaches a driver-targeted review to a
// delivered parcel and recomputes the driver's average rating in the same
// transaction.
type ReviewParcelCommandHandler struct {
	uowFactory ParcelReviewUoWFactory
}

// NewReviewParcelCommandHandler creates a handler for parcel reviews.
func NewReviewParcelCommandHandler(uowFactory ParcelReviewUoWFactory) ReviewParcelCommandHandler {
	return ReviewParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review. Only the parcel's sender may review, only
// after delivery with a driver assigned, and only once.
func (h ReviewParcelCommandHandler) Handle(
	ctx context.Context, cmd ReviewParcelCommand,
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

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if !cmd.ReviewerID().IsEqual(aggregate.SenderID()) {
		return nil, errs.NewForbiddenError(
			cmd.ReviewerID().String(), "review", "parcel "+aggregate.ID().String())
	}
	if aggregate.Status() != parcel.StatusDelivered {
		return nil, errs.NewInvalidTransitionError(aggregate.Status().String(), "review")
	}

	driverID := aggregate.Driver()
	if driverID == nil {
		return nil, errs.NewInvalidTransitionError(aggregate.Status().String(), "review without driver")
	}

	entity, err := review.NewReview(
		kernel.NewUUID(), cmd.ReviewerID(),
		review.TargetDriver, *driverID, aggregate.ID(),
		cmd.Rating(), cmd.Comment(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReviewRepository().Add(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().RecomputeRating(ctx, review.TargetDriver, *driverID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
