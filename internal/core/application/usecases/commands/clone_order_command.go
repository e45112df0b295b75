package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCloneOrderCommandIsNotConstructed = errors.New(
	"CloneOrderCommand must be created via NewCloneOrderCommand constructor",
)

// CloneOrderCommand represents a request to duplicate an order's shipment
// descriptor under a new reference. The clone starts fresh in the initial
// status with no courier assignment.
type CloneOrderCommand struct { //nolint:recvcheck //using for validation
	sourceRef string
	newRef    string

	guard guard.ConstructorGuard
}

// NewCloneOrderCommand creates a command to clone an order.
// The source and the new reference must differ.
func NewCloneOrderCommand(sourceRef, newRef string) (CloneOrderCommand, error) {
	if strings.TrimSpace(sourceRef) == "" {
		return CloneOrderCommand{}, errs.NewValueIsRequiredError("sourceRef")
	}
	if strings.TrimSpace(newRef) == "" {
		return CloneOrderCommand{}, errs.NewValueIsRequiredError("newRef")
	}
	if sourceRef == newRef {
		return CloneOrderCommand{}, errs.NewValueIsInvalidError("newRef")
	}

	return CloneOrderCommand{
		sourceRef: sourceRef,
		newRef:    newRef,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloneOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloneOrderCommandIsNotConstructed)
}

// SourceRef returns the reference of the order to copy.
func (c CloneOrderCommand) SourceRef() string { return c.sourceRef }

// NewRef returns the reference assigned to the clone.
func (c CloneOrderCommand) NewRef() string { return c.newRef }
