package parcel

import (
	"errors"
	"time"

	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Recipient holds the contact details of the person receiving the parcel.
type Recipient struct {
	Name  string
	Phone string
}

// Waypoint pairs an address line with optional coordinates. Coordinates are
// nil when the sender supplied only a street address; pricing then falls
// back to the default distance estimate.
type Waypoint struct {
	Address  string
	Location *kernel.GeoPoint
}

// Parcel is the parcel delivery aggregate root: a point-to-point courier job
// from a pickup waypoint to a delivery waypoint.
//
// Invariants:
//   - id, sender, recipient, waypoints, size and weight are fixed at creation
//   - the delivery fee and estimated distance are stamped at creation and
//     never recomputed
//   - the driver reference is set at most once, by Claim
//   - pickedUpAt and deliveredAt are stamped exactly once, on first entry
//     into the corresponding status
type Parcel struct {
	id       kernel.UUID
	senderID kernel.UUID
	driverID *kernel.UUID

	status Status

	recipient   Recipient
	pickup      Waypoint
	delivery    Waypoint
	description string
	size        Size
	weightKg    *float64

	deliveryFee         decimal.Decimal
	estimatedDistanceKm float64

	createdAt   time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewParcel creates a parcel delivery in pending status with no driver
// assigned. The fee and distance come from the pricing calculator and are
// stamped immutably here.
func NewParcel(
	id, senderID kernel.UUID,
	recipient Recipient,
	pickup, delivery Waypoint,
	description string,
	size Size,
	weightKg *float64,
	deliveryFee decimal.Decimal,
	estimatedDistanceKm float64,
	createdAt time.Time,
) (*Parcel, error) {
	if err := errors.Join(id.Validate(), senderID.Validate(), size.Validate()); err != nil {
		return nil, err
	}
	if recipient.Name == "" {
		return nil, errs.NewValueIsRequiredError("recipientName")
	}
	if recipient.Phone == "" {
		return nil, errs.NewValueIsRequiredError("recipientPhone")
	}
	if pickup.Address == "" {
		return nil, errs.NewValueIsRequiredError("pickupAddress")
	}
	if delivery.Address == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	for _, loc := range []*kernel.GeoPoint{pickup.Location, delivery.Location} {
		if loc != nil {
			if err := loc.Validate(); err != nil {
				return nil, err
			}
		}
	}
	if weightKg != nil && *weightKg <= 0 {
		return nil, errs.NewValueIsInvalidError("weightKg")
	}
	if deliveryFee.IsNegative() {
		return nil, errs.NewValueIsInvalidError("deliveryFee")
	}
	if estimatedDistanceKm < 0 {
		return nil, errs.NewValueIsInvalidError("estimatedDistanceKm")
	}

	return &Parcel{
		id:                  id,
		senderID:            senderID,
		status:              StatusPending,
		recipient:           recipient,
		pickup:              pickup,
		delivery:            delivery,
		description:         description,
		size:                size,
		weightKg:            weightKg,
		deliveryFee:         deliveryFee,
		estimatedDistanceKm: estimatedDistanceKm,
		createdAt:           createdAt,
		isConstructed:       true,
	}, nil
}

// RestoreParcel rehydrates a parcel from persistence.
func RestoreParcel(
	id, senderID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	recipient Recipient,
	pickup, delivery Waypoint,
	description string,
	size Size,
	weightKg *float64,
	deliveryFee decimal.Decimal,
	estimatedDistanceKm float64,
	createdAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
) (*Parcel, error) {
	if err := errors.Join(id.Validate(), senderID.Validate(), status.Validate(), size.Validate()); err != nil {
		return nil, err
	}

	return &Parcel{
		id:                  id,
		senderID:            senderID,
		driverID:            driverID,
		status:              status,
		recipient:           recipient,
		pickup:              pickup,
		delivery:            delivery,
		description:         description,
		size:                size,
		weightKg:            weightKg,
		deliveryFee:         deliveryFee,
		estimatedDistanceKm: estimatedDistanceKm,
		createdAt:           createdAt,
		pickedUpAt:          pickedUpAt,
		deliveredAt:         deliveredAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// SenderID returns the requester who owns cancellation and review rights.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// Driver returns the assigned driver's ID, or nil before a claim. The
// driver is also the target of any review attached to this parcel.
func (p *Parcel) Driver() *kernel.UUID {
	return p.driverID
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Recipient returns the recipient contact details.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// Pickup returns the pickup waypoint.
func (p *Parcel) Pickup() Waypoint {
	return p.pickup
}

// Delivery returns the delivery waypoint.
func (p *Parcel) Delivery() Waypoint {
	return p.delivery
}

// Description returns the optional free-form parcel description.
func (p *Parcel) Description() string {
	return p.description
}

// Size returns the parcel size classification.
func (p *Parcel) Size() Size {
	return p.size
}

// WeightKg returns the declared weight, or nil when not provided.
func (p *Parcel) WeightKg() *float64 {
	return p.weightKg
}

// DeliveryFee returns the fee stamped at creation.
func (p *Parcel) DeliveryFee() decimal.Decimal {
	return p.deliveryFee
}

// EstimatedDistanceKm returns the distance estimate captured at creation.
func (p *Parcel) EstimatedDistanceKm() float64 {
	return p.estimatedDistanceKm
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// PickedUpAt returns when the parcel first reached picked_up, or nil.
func (p *Parcel) PickedUpAt() *time.Time {
	return p.pickedUpAt
}

// DeliveredAt returns when the parcel first reached delivered, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Cancel halts the parcel. Only the sender may cancel, and only while the
// parcel is pending or assigned. A cancelled parcel keeps its driver
// reference (if any) and accepts no further mutation.
func (p *Parcel) Cancel(by kernel.UUID) error {
	if !by.IsEqual(p.senderID) {
		return errs.NewForbiddenError(by.String(), "cancel", "parcel "+p.id.String())
	}
	if !p.status.IsCancellable() {
		return errs.NewInvalidTransitionError(p.status.String(), "cancel")
	}

	p.status = StatusCancelled
	return nil
}

// Claim attaches a driver to the parcel. The parcel must have no driver yet
// and still be pending; a successful claim advances it to assigned.
//
// This method validates the claim against the in-memory state; the storage
// layer enforces the same condition atomically so that concurrent claims
// cannot both commit.
func (p *Parcel) Claim(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if p.driverID != nil {
		return errs.NewAlreadyAssignedError(p.id.String())
	}
	if !p.status.IsClaimable() {
		return errs.NewInvalidTransitionError(p.status.String(), "claim")
	}

	p.driverID = &driverID
	p.status = StatusAssigned
	return nil
}

// UpdateStatus applies a driver-driven status change. The caller must be
// the assigned driver. Any forward move is accepted; a repeat of the current
// status is a no-op; terminal statuses accept nothing else. Entering
// picked_up or delivered stamps the corresponding timestamp exactly once.
//
// The returned flag reports whether this call first entered delivered, which
// is the trigger for the driver's completed-delivery count increment.
func (p *Parcel) UpdateStatus(driverID kernel.UUID, next Status, at time.Time) (bool, error) {
	if err := next.Validate(); err != nil {
		return false, err
	}
	if p.driverID == nil || !driverID.IsEqual(*p.driverID) {
		return false, errs.NewForbiddenError(driverID.String(), "update", "parcel "+p.id.String())
	}
	if next == p.status {
		return false, nil
	}
	if p.status.IsTerminal() {
		return false, errs.NewInvalidTransitionError(p.status.String(), "update status")
	}
	if next == StatusCancelled || !p.status.canProgressTo(next) {
		return false, errs.NewInvalidTransitionError(p.status.String(), "move to "+next.String())
	}

	p.status = next

	switch next {
	case StatusPickedUp:
		if p.pickedUpAt == nil {
			stamp := at
			p.pickedUpAt = &stamp
		}
	case StatusDelivered:
		if p.deliveredAt == nil {
			stamp := at
			p.deliveredAt = &stamp
			return true, nil
		}
	}
	return false, nil
}
