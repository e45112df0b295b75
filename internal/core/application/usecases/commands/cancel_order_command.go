package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a merchant cancellation request.
// Cancellation is free before pickup; once the carrier has the shipment the
// request is rejected by policy.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderRef string) (CancelOrderCommand, error) {
	if strings.TrimSpace(orderRef) == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("orderRef")
	}

	return CancelOrderCommand{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to cancel.
func (c CancelOrderCommand) OrderRef() string { return c.orderRef }
