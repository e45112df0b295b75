package commands

import (
	"context"
	"time"
)

// ResolveIncidentCommandHandler closes open non-delivery incidents.
// Reattempt and contact updates leave the order where it is; initiating RTO
// transitions the order to its return status through the state machine, in
// the same transaction as the incident close. The already-debited shipping
// charge is not refunded on RTO.
type ResolveIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
}

// NewResolveIncidentCommandHandler creates a handler for incident resolution.
func NewResolveIncidentCommandHandler(uowFactory IncidentUoWFactory) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
// Resolving a closed incident fails with ndr.ErrIncidentAlreadyClosed.
func (h ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	incidentRepo := uow.IncidentRepository()

	// Lock the incident row so racing resolutions serialize: the second one
	// sees the close and fails with ndr.ErrIncidentAlreadyClosed.
	incident, err := incidentRepo.GetForUpdate(ctx, cmd.IncidentID())
	if err != nil {
		return err
	}

	now := time.Now()

	returnToOrigin, err := incident.Resolve(cmd.Action(), now)
	if err != nil {
		return err
	}

	if returnToOrigin {
		aggregate, err := orderRepo.GetForUpdate(ctx, incident.OrderRef())
		if err != nil {
			return err
		}

		if err = aggregate.InitiateRTO(now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = incidentRepo.Update(ctx, incident); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
