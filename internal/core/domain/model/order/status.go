package order

import (
	"deliverymarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a food order.
// Statuses travel over the wire as the literal lowercase tokens below.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> picked_up ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Forward jumps are permitted for the assigned driver (e.g. preparing
// straight to picked_up); backward moves never are. delivered and cancelled
// are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusPickedUp  Status = "picked_up"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// statusRank orders the forward progression. cancelled is deliberately
// absent: it is reachable only through Cancel, never through UpdateStatus.
var statusRank = map[Status]int{
	StatusPending:   1,
	StatusConfirmed: 2,
	StatusPreparing: 3,
	StatusReady:     4,
	StatusPickedUp:  5,
	StatusDelivered: 6,
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
		return errs.NewValueIsInvalidError("order status " + string(s))
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

// IsCancellable reports whether the requester may still cancel the order.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsClaimable reports whether a driver may claim the order.
func (s Status) IsClaimable() bool {
	return s == StatusConfirmed || s == StatusReady
}

// canProgressTo reports whether a driver-driven update from s to next is a
// legal forward move. Equal statuses are handled by the aggregate as no-ops
// before this check.
func (s Status) canProgressTo(next Status) bool {
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}
