package parcel

import (
	"deliverymarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel delivery.
// Statuses travel over the wire as the literal lowercase tokens below.
//
// State transitions:
//
//	pending ──> assigned ──> picked_up ──> in_transit ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Forward jumps are permitted for the assigned driver; backward moves never
// are. delivered and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// statusRank orders the forward progression. cancelled is reachable only
// through Cancel, never through UpdateStatus.
var statusRank = map[Status]int{
	StatusPending:   1,
	StatusAssigned:  2,
	StatusPickedUp:  3,
	StatusInTransit: 4,
	StatusDelivered: 5,
}

// ParseStatus converts a wire token into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the enumerated values.
func (s Status) Validate() error {
	if s == StatusCancelled {
		return nil
	}
	if _, ok := statusRank[s]; !ok {
		return errs.NewValueIsInvalidError("parcel status " + string(s))
	}
	return nil
}

// String returns the wire token for the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsCancellable reports whether the sender may still cancel the parcel.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusAssigned
}

// IsClaimable reports whether a driver may claim the parcel.
// Unlike food orders, parcels are claimable only while pending.
func (s Status) IsClaimable() bool {
	return s == StatusPending
}

func (s Status) canProgressTo(next Status) bool {
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}
