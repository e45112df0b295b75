package commands

import (
	"context"
	"time"
)

// RecordTrackingEventCommandHandler applies carrier milestones to orders.
// Each event maps to one state machine transition; the order aggregate
// rejects events that do not fit the current status.
type RecordTrackingEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordTrackingEventCommandHandler creates a handler for tracking events.
func NewRecordTrackingEventCommandHandler(uowFactory OrderUoWFactory) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking event command.
func (h RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
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

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}

	now := time.Now()
	switch cmd.Event() {
	case TrackingPickedUp:
		err = aggregate.ConfirmPickup(now)
	case TrackingOutForDelivery:
		err = aggregate.MarkOutForDelivery(now)
	case TrackingDelivered:
		err = aggregate.MarkDelivered(now)
	default:
		err = cmd.Event().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
