package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//
// Under AnyTransition every valid status may move to any other valid status.
// Under ForwardOnly a status may stay where it is or move further right.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota
	Pending
	Preparing
	OutForDelivery
	Delivered
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Preparing:      "preparing",
	OutForDelivery: "out-for-delivery",
	Delivered:      "delivered",
}

// ValidStatuses returns every valid status in lifecycle order.
func ValidStatuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus converts the wire name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", ErrStatusIsNotAllowed)
}

// ErrStatusIsNotAllowed lists the closed status set.
var ErrStatusIsNotAllowed = fmt.Errorf("Order must have a status of %s", strings.Join(statusNameList(), ", "))

func statusNameList() []string {
	names := make([]string, 0, len(statusNames))
	for _, s := range ValidStatuses() {
		names = append(names, statusNames[s])
	}
	return names
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrStatusIsNotAllowed)
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// TransitionTo returns next if policy allows moving there from s.
func (s Status) TransitionTo(next Status, policy TransitionPolicy) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if policy == ForwardOnly && s.Validate() == nil && next < s {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("Order status cannot move from %s back to %s", s, next),
		)
	}

	return next, nil
}

// ErrOrderIsNotPending is the reason a non-pending order cannot be deleted.
var ErrOrderIsNotPending = errors.New("An order cannot be deleted unless it is pending")

// ValidateDelete allows deletion from Pending only.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewOperationIsForbiddenErrorWithCause("delete order", ErrOrderIsNotPending)
	}
	return nil
}

// TransitionPolicy decides which status changes an update may perform.
type TransitionPolicy int

const (
	// AnyTransition accepts any valid status regardless of the current one.
	AnyTransition TransitionPolicy = iota
	// ForwardOnly rejects moving back along the lifecycle.
	ForwardOnly
)

// ParseTransitionPolicy reads "any" (or empty) and "forward".
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return AnyTransition, nil
	case "forward":
		return ForwardOnly, nil
	default:
		return AnyTransition, errs.NewValueIsInvalidErrorWithCause(
			"order status policy",
			fmt.Errorf("%q is not one of any, forward", s),
		)
	}
}

func (p TransitionPolicy) String() string {
	if p == ForwardOnly {
		return "forward"
	}
	return "any"
}
