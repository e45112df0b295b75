package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrAcceptDisputeCommandIsNotConstructed = errors.New(
	"AcceptDisputeCommand must be created via NewAcceptDisputeCommand constructor",
)

// AcceptDisputeCommand represents the merchant's "Accept & Pay" decision on a
// pending weight dispute.
type AcceptDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDisputeCommand creates a command to accept and pay a dispute.
func NewAcceptDisputeCommand(disputeID kernel.UUID) (AcceptDisputeCommand, error) {
	if err := disputeID.Validate(); err != nil {
		return AcceptDisputeCommand{}, err
	}

	return AcceptDisputeCommand{
		disputeID: disputeID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDisputeCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute to settle.
func (c AcceptDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }
