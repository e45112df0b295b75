package commands

import (
	"errors"

	"shipdesk/internal/pkg/guard"
)

var ErrSweepExpiredDisputesCommandIsNotConstructed = errors.New(
	"SweepExpiredDisputesCommand must be created via NewSweepExpiredDisputesCommand constructor",
)

// SweepExpiredDisputesCommand triggers the auto-accept policy over pending
// weight disputes whose deadline has passed. Carries no parameters.
type SweepExpiredDisputesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredDisputesCommand creates a sweep command.
func NewSweepExpiredDisputesCommand() SweepExpiredDisputesCommand {
	return SweepExpiredDisputesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredDisputesCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredDisputesCommandIsNotConstructed)
}
