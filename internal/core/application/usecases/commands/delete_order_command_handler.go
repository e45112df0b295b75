package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler removes orders that never shipped or already
// finished their lifecycle.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for delete operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// In-flight orders fail with order.ErrOrderNotDeletable.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if !aggregate.IsDeletable() {
		return order.ErrOrderNotDeletable
	}

	if err = orderRepo.Delete(ctx, cmd.OrderRef()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
