package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/pkg/guard"
)

var ErrResolveIncidentCommandIsNotConstructed = errors.New(
	"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
)

// ResolveIncidentCommand represents the merchant's answer to an open
// non-delivery incident.
type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID
	action     ndr.ResolutionAction

	guard guard.ConstructorGuard
}

// NewResolveIncidentCommand creates a command to resolve an incident.
func NewResolveIncidentCommand(incidentID kernel.UUID, action ndr.ResolutionAction) (ResolveIncidentCommand, error) {
	if err := incidentID.Validate(); err != nil {
		return ResolveIncidentCommand{}, err
	}
	if err := action.Validate(); err != nil {
		return ResolveIncidentCommand{}, err
	}

	return ResolveIncidentCommand{
		incidentID: incidentID,
		action:     action,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

// IncidentID returns the incident to resolve.
func (c ResolveIncidentCommand) IncidentID() kernel.UUID { return c.incidentID }

// Action returns the chosen resolution action.
func (c ResolveIncidentCommand) Action() ndr.ResolutionAction { return c.action }
