package order

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	New ──> ReadyToShip ──> Manifest ──> PickupScheduled ──> InTransit ──> OutForDelivery ──> Delivered
//	 │           │              │               │                │                 │
//	 │           └──────────────┴───> Cancelled <┘ (pre-pickup)  └──────> RTO <────┘
//	 └──────────────> Cancelled
//
// Delivered, RTO, and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at order creation.
	// Orders in this status have no courier and no AWB.
	New

	// ReadyToShip indicates a courier and AWB were assigned and the
	// shipping charge was debited from the merchant wallet.
	ReadyToShip

	// Manifest indicates the order was added to a pickup manifest.
	Manifest

	// PickupScheduled indicates a carrier pickup was scheduled for the manifest.
	PickupScheduled

	// InTransit indicates the carrier confirmed pickup and the shipment
	// is moving through the line haul.
	InTransit

	// OutForDelivery indicates the shipment is on the last-mile vehicle.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal, success path.
	Delivered

	// RTO indicates the shipment is being returned to origin after a
	// non-delivery resolution. Terminal, failure path; the shipping
	// charge is not refunded.
	RTO

	// Cancelled indicates merchant cancellation before carrier pickup.
	// Terminal.
	Cancelled
)

// ErrInvalidTransition is the sentinel error for rejected status transitions.
// Use errors.Is with this sentinel to classify InvalidTransitionError values.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a transition request that does not match the
// state machine. It carries the current state, the requested target, and the
// targets allowed from the current state so the caller can surface all three.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

// Error formats the rejected transition with the allowed alternatives.
func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, s.String())
	}
	if len(allowed) == 0 {
		return fmt.Sprintf("%s: %s is terminal, requested %s",
			ErrInvalidTransition, e.Current, e.Requested)
	}
	return fmt.Sprintf("%s: %s -> %s (allowed: %s)",
		ErrInvalidTransition, e.Current, e.Requested, strings.Join(allowed, ", "))
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
// The strings match the labels used on waybills and in merchant-facing listings.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		New:             "New",
		ReadyToShip:     "Ready to Ship",
		Manifest:        "Manifest",
		PickupScheduled: "Pickup Scheduled",
		InTransit:       "In Transit",
		OutForDelivery:  "Out For Delivery",
		Delivered:       "Delivered",
		RTO:             "RTO",
		Cancelled:       "Cancelled",
	}
}

// getAllowedTransitions returns the full transition table of the state machine.
// A status missing from the map or mapped to an empty slice is terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:             {ReadyToShip, Cancelled},
		ReadyToShip:     {Manifest, Cancelled},
		Manifest:        {PickupScheduled, Cancelled},
		PickupScheduled: {InTransit, Cancelled},
		InTransit:       {OutForDelivery, RTO},
		OutForDelivery:  {Delivered, RTO},
	}
}

// StatusFromString parses a status from its display string.
// Returns an error for unknown labels.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedTargets returns the statuses reachable from s in a single transition.
// Terminal statuses return an empty slice.
func (s Status) AllowedTargets() []Status {
	return getAllowedTransitions()[s]
}

// CanTransitionTo reports whether target is reachable from s in a single transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to target.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (Unknown, *InvalidTransitionError) otherwise; the error names the
//     current state, the requested target, and the allowed targets
//
// Every status mutation in the system goes through this method; a transition
// request that does not match the table never silently no-ops.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{
			Current:   s,
			Requested: target,
			Allowed:   s.AllowedTargets(),
		}
	}
	return target, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s != Unknown
}

// IsPrePickup reports whether the order has not yet been picked up by the
// carrier. Merchant cancellation is only allowed while this holds.
func (s Status) IsPrePickup() bool {
	switch s {
	case New, ReadyToShip, Manifest, PickupScheduled:
		return true
	default:
		return false
	}
}

// IsDispatched reports whether the order passed the dispatch transition and
// therefore carries a courier assignment and AWB.
func (s Status) IsDispatched() bool {
	switch s {
	case ReadyToShip, Manifest, PickupScheduled, InTransit, OutForDelivery, Delivered, RTO:
		return true
	default:
		return false
	}
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - New orders must not have a courier assigned
//   - Dispatched orders (ReadyToShip and beyond, including RTO) must have one
//   - Cancelled orders may have one only when cancelled after dispatch
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if s == Cancelled {
		return nil
	}
	if courier && !s.IsDispatched() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}
	if !courier && s.IsDispatched() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}
	return nil
}
