package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"
	"deliverymarket/internal/pkg/guard"
)

var ErrReviewFoodOrderCommandIsNotConstructed = errors.New(
	"ReviewFoodOrderCommand must be created via NewReviewFoodOrderCommand constructor",
)

// ReviewFoodOrderCommand represents the customer rating the restaurant
// after their order was delivered.
type ReviewFoodOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	reviewerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewReviewFoodOrderCommand creates a command to review a delivered order.
// The rating must fall within the 1 to 5 scale.
func NewReviewFoodOrderCommand(
	orderID, reviewerID kernel.UUID, rating int, comment string,
) (ReviewFoodOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), reviewerID.Validate()); err != nil {
		return ReviewFoodOrderCommand{}, err
	}
	if rating < review.MinRating || rating > review.MaxRating {
		return ReviewFoodOrderCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, review.MinRating, review.MaxRating)
	}

	return ReviewFoodOrderCommand{
		orderID:    orderID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewFoodOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewFoodOrderCommandIsNotConstructed)
}

// OrderID returns the order being reviewed.
func (c ReviewFoodOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReviewerID returns the reviewing customer.
func (c ReviewFoodOrderCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Rating returns the submitted rating.
func (c ReviewFoodOrderCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-form comment.
func (c ReviewFoodOrderCommand) Comment() string {
	return c.comment
}
