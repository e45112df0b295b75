package commands

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// TrackingEvent is a carrier-reported milestone that advances an order along
// the happy path of its lifecycle.
type TrackingEvent int

const (
	// TrackingEventUnknown represents an invalid or undefined tracking event.
	TrackingEventUnknown TrackingEvent = iota

	// TrackingPickedUp is the carrier's pickup confirmation.
	TrackingPickedUp

	// TrackingOutForDelivery is the carrier's last-mile handoff.
	TrackingOutForDelivery

	// TrackingDelivered is the successful delivery confirmation.
	TrackingDelivered
)

func getTrackingEventStrings() map[TrackingEvent]string {
	return map[TrackingEvent]string{
		TrackingPickedUp:       "picked_up",
		TrackingOutForDelivery: "out_for_delivery",
		TrackingDelivered:      "delivered",
	}
}

// TrackingEventFromString parses a tracking event from its wire label.
func TrackingEventFromString(s string) (TrackingEvent, error) {
	for event, label := range getTrackingEventStrings() {
		if label == s {
			return event, nil
		}
	}
	return TrackingEventUnknown, errs.NewValueIsInvalidErrorWithCause("tracking event",
		fmt.Errorf("%q is not a known tracking event", s))
}

// Validate checks the event is one of the defined values.
func (e TrackingEvent) Validate() error {
	if _, ok := getTrackingEventStrings()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tracking event",
			fmt.Errorf("%d is not a known tracking event", int(e)))
	}
	return nil
}

// String implements fmt.Stringer using the wire labels.
func (e TrackingEvent) String() string {
	if label, ok := getTrackingEventStrings()[e]; ok {
		return label
	}
	return "unknown"
}

// RecordTrackingEventCommand represents a carrier milestone report against
// one order.
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	event    TrackingEvent

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to record a tracking event.
func NewRecordTrackingEventCommand(orderRef string, event TrackingEvent) (RecordTrackingEventCommand, error) {
	cmd := RecordTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(orderRef) == "" {
		return RecordTrackingEventCommand{}, errs.NewValueIsRequiredError("orderRef")
	}
	if err := event.Validate(); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	cmd.orderRef = orderRef
	cmd.event = event
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// OrderRef returns the reference of the tracked order.
func (c RecordTrackingEventCommand) OrderRef() string { return c.orderRef }

// Event returns the reported milestone.
func (c RecordTrackingEventCommand) Event() TrackingEvent { return c.event }
