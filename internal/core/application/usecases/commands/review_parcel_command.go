package commands

import (
	"errors"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/pkg/errs"
	"deliverymarket/internal/pkg/guard"
)

var ErrReviewParcelCommandIsNotConstructed = errors.New(
	"ReviewParcelCommand must be created via NewReviewParcelCommand constructor",
)

// ReviewParcelCommand represents the sender rating the driver after their
// parcel was delivered.
type ReviewParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	reviewerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewReviewParcelCommand creates a command to review a delivered parcel.
// The rating must fall within the 1 to 5 scale.
func NewReviewParcelCommand(
	parcelID, reviewerID kernel.UUID, rating int, comment string,
) (ReviewParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), reviewerID.Validate()); err != nil {
		return ReviewParcelCommand{}, err
	}
	if rating < review.MinRating || rating > review.MaxRating {
		return ReviewParcelCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, review.MinRating, review.MaxRating)
	}

	return ReviewParcelCommand{
		parcelID:   parcelID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewParcelCommand) Validate() error {
	return c.guard.Validate(ErrReviewParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel being reviewed.
func (c ReviewParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ReviewerID returns the reviewing sender.
func (c ReviewParcelCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Rating returns the submitted rating.
func (c ReviewParcelCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-form comment.
func (c ReviewParcelCommand) Comment() string {
	return c.comment
}
