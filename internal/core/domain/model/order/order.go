package order

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Totals carries the financial fields stamped onto an order at creation.
// They are computed once by the pricing calculator and never recomputed.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Order is the food order aggregate root. It owns the order lifecycle from
// creation through driver claim to delivery or cancellation.
//
// Invariants:
//   - id, customer, restaurant and the item list are fixed at creation
//   - subtotal equals the sum of item line totals, and
//     total = subtotal + delivery fee + tax, both checked at construction
//   - the driver reference is set at most once, by Claim
//   - status only moves along the transition rules in Status
//   - confirmedAt and deliveredAt are stamped exactly once, on first entry
//     into the corresponding status
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID

	status Status

	deliveryAddress     string
	deliveryLocation    *kernel.GeoPoint
	items               []Item
	totals              Totals
	specialInstructions string

	createdAt   time.Time
	confirmedAt *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a food order in pending status with no driver assigned.
// The item list must be non-empty and every item valid; totals must be
// internally consistent with the items.
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	items []Item,
	totals Totals,
	specialInstructions string,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if deliveryLocation != nil {
		if err := deliveryLocation.Validate(); err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	lineSum := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		lineSum = lineSum.Add(item.LineTotal())
	}
	if !lineSum.Equal(totals.Subtotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totals",
			errors.New("subtotal does not match sum of item line totals"))
	}
	if !totals.Subtotal.Add(totals.DeliveryFee).Add(totals.Tax).Equal(totals.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totals",
			errors.New("total does not equal subtotal + delivery fee + tax"))
	}

	return &Order{
		id:                  id,
		customerID:          customerID,
		restaurantID:        restaurantID,
		status:              StatusPending,
		deliveryAddress:     deliveryAddress,
		deliveryLocation:    deliveryLocation,
		items:               items,
		totals:              totals,
		specialInstructions: specialInstructions,
		createdAt:           createdAt,
		isConstructed:       true,
	}, nil
}

// RestoreOrder rehydrates an order from persistence without re-running the
// creation-time pricing checks.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	deliveryAddress string,
	deliveryLocation *kernel.GeoPoint,
	items []Item,
	totals Totals,
	specialInstructions string,
	createdAt time.Time,
	confirmedAt, deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                  id,
		customerID:          customerID,
		restaurantID:        restaurantID,
		driverID:            driverID,
		status:              status,
		deliveryAddress:     deliveryAddress,
		deliveryLocation:    deliveryLocation,
		items:               items,
		totals:              totals,
		specialInstructions: specialInstructions,
		createdAt:           createdAt,
		confirmedAt:         confirmedAt,
		deliveredAt:         deliveredAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the requester who owns cancellation and review rights.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed with. It is also
// the target of any review attached to this order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's ID, or nil before a claim.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryLocation returns the destination coordinates, or nil when the
// customer did not supply them.
func (o *Order) DeliveryLocation() *kernel.GeoPoint {
	return o.deliveryLocation
}

// Items returns the order lines fixed at creation.
func (o *Order) Items() []Item {
	return o.items
}

// Totals returns the financial fields stamped at creation.
func (o *Order) Totals() Totals {
	return o.totals
}

// SpecialInstructions returns the optional order-level note.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order first reached confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// DeliveredAt returns when the order first reached delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Cancel halts the order. Only the requester may cancel, and only while the
// order is pending or confirmed. A cancelled order keeps its driver
// reference (if any) and accepts no further mutation.
func (o *Order) Cancel(by kernel.UUID) error {
	if !by.IsEqual(o.customerID) {
		return errs.NewForbiddenError(by.String(), "cancel", "order "+o.id.String())
	}
	if !o.status.IsCancellable() {
		return errs.NewInvalidTransitionError(o.status.String(), "cancel")
	}

	o.status = StatusCancelled
	return nil
}

// Claim attaches a driver to the order. The order must have no driver yet
// and be in confirmed or ready status. Claiming a confirmed order advances
// it to preparing; a ready order stays ready until the driver updates it.
//
// This method validates the claim against the in-memory state; the storage
// layer enforces the same condition atomically so that concurrent claims
// cannot both commit.
func (o *Order) Claim(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewAlreadyAssignedError(o.id.String())
	}
	if !o.status.IsClaimable() {
		return errs.NewInvalidTransitionError(o.status.String(), "claim")
	}

	o.driverID = &driverID
	if o.status == StatusConfirmed {
		o.status = StatusPreparing
	}
	return nil
}

// UpdateStatus applies a driver-driven status change. The caller must be
// the assigned driver. Any forward move is accepted; a repeat of the current
// status is a no-op; terminal statuses accept nothing else. Entering
// confirmed or delivered stamps the corresponding timestamp exactly once.
//
// The returned flag reports whether this call first entered delivered, which
// is the trigger for the driver's completed-delivery count increment.
func (o *Order) UpdateStatus(driverID kernel.UUID, next Status, at time.Time) (bool, error) {
	if err := next.Validate(); err != nil {
		return false, err
	}
	if o.driverID == nil || !driverID.IsEqual(*o.driverID) {
		return false, errs.NewForbiddenError(driverID.String(), "update", "order "+o.id.String())
	}
	if next == o.status {
		return false, nil
	}
	if o.status.IsTerminal() {
		return false, errs.NewInvalidTransitionError(o.status.String(), "update status")
	}
	if next == StatusCancelled || !o.status.canProgressTo(next) {
		return false, errs.NewInvalidTransitionError(o.status.String(), "move to "+next.String())
	}

	o.status = next

	switch next {
	case StatusConfirmed:
		if o.confirmedAt == nil {
			stamp := at
			o.confirmedAt = &stamp
		}
	case StatusDelivered:
		if o.deliveredAt == nil {
			stamp := at
			o.deliveredAt = &stamp
			return true, nil
		}
	}
	return false, nil
}
