package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrRaiseDisputeCommandIsNotConstructed = errors.New(
	"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
)

// RaiseDisputeCommand represents the merchant contesting a pending weight
// audit. A non-empty remark and at least one evidence attachment are
// required before any state changes.
type RaiseDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	remark    string
	evidence  []string

	guard guard.ConstructorGuard
}

// NewRaiseDisputeCommand creates a command to contest a dispute.
func NewRaiseDisputeCommand(disputeID kernel.UUID, remark string, evidence []string) (RaiseDisputeCommand, error) {
	if err := disputeID.Validate(); err != nil {
		return RaiseDisputeCommand{}, err
	}
	if strings.TrimSpace(remark) == "" {
		return RaiseDisputeCommand{}, errs.NewValueIsRequiredError("remark")
	}
	if len(evidence) == 0 {
		return RaiseDisputeCommand{}, errs.NewValueIsRequiredError("evidence")
	}

	return RaiseDisputeCommand{
		disputeID: disputeID,
		remark:    remark,
		evidence:  evidence,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute to contest.
func (c RaiseDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }

// Remark returns the merchant's objection.
func (c RaiseDisputeCommand) Remark() string { return c.remark }

// Evidence returns the attachment references backing the objection.
func (c RaiseDisputeCommand) Evidence() []string { return c.evidence }
