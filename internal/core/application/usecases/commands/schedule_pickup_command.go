package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand represents the bulk "generate pickup" action on a
// selection of dispatched orders. Each selected order advances through
// Manifest to PickupScheduled; the batch has no per-order side effect beyond
// status and the pickup-scheduled timestamp.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	orderRefs []string

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to schedule pickup for a batch
// of orders. At least one reference is required and none may be blank.
func NewSchedulePickupCommand(orderRefs []string) (SchedulePickupCommand, error) {
	if len(orderRefs) == 0 {
		return SchedulePickupCommand{}, errs.NewValueIsRequiredError("orderRefs")
	}
	for _, ref := range orderRefs {
		if strings.TrimSpace(ref) == "" {
			return SchedulePickupCommand{}, errs.NewValueIsRequiredError("orderRefs")
		}
	}

	return SchedulePickupCommand{
		orderRefs: orderRefs,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// OrderRefs returns the references of the selected orders.
func (c SchedulePickupCommand) OrderRefs() []string { return c.orderRefs }
