package commands

import (
	"context"
	"time"

	"shipdesk/internal/core/domain/model/order"
)

// SchedulePickupResult is the outcome for one order of a pickup batch.
type SchedulePickupResult struct {
	OrderRef string
	Err      error
}

// SchedulePickupCommandHandler handles the bulk pickup scheduling action.
// The batch is a wrapper around the single-order transition: each order is
// scheduled in its own transaction and reported individually, so one stale
// row does not reject the rest of the selection.
type SchedulePickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling.
func NewSchedulePickupCommandHandler(uowFactory OrderUoWFactory) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch pickup command.
// Returns one result per requested order, in request order.
func (h SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) ([]SchedulePickupResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	results := make([]SchedulePickupResult, 0, len(cmd.OrderRefs()))
	for _, ref := range cmd.OrderRefs() {
		results = append(results, SchedulePickupResult{
			OrderRef: ref,
			Err:      h.scheduleOne(ctx, ref),
		})
	}

	return results, nil
}

// scheduleOne advances a single order to PickupScheduled in its own
// transaction. Orders still in ReadyToShip pass through Manifest on the way;
// orders already in Manifest advance directly.
func (h SchedulePickupCommandHandler) scheduleOne(ctx context.Context, ref string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	now := time.Now()

	aggregate, err := orderRepo.GetForUpdate(ctx, ref)
	if err != nil {
		return err
	}

	if aggregate.Status() == order.ReadyToShip {
		if err = aggregate.MarkManifest(now); err != nil {
			return err
		}
	}

	if err = aggregate.SchedulePickup(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
