package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order entirely.
// Only orders that never shipped or have finished their lifecycle may be
// deleted; in-flight orders must be cancelled or delivered first.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderRef string) (DeleteOrderCommand, error) {
	if strings.TrimSpace(orderRef) == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderRef")
	}

	return DeleteOrderCommand{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to delete.
func (c DeleteOrderCommand) OrderRef() string { return c.orderRef }
