package commands

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/pkg/errs"
)

// CloneOrderCommandHandler duplicates an order's shipment descriptor under a
// new reference.
type CloneOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloneOrderCommandHandler creates a handler for clone operations.
func NewCloneOrderCommandHandler(uowFactory OrderUoWFactory) CloneOrderCommandHandler {
	return CloneOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clone command.
// Rejects the clone when the new reference is already taken.
func (h CloneOrderCommandHandler) Handle(ctx context.Context, cmd CloneOrderCommand) error {
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

	_, err := orderRepo.Get(ctx, cmd.NewRef())
	if err == nil {
		return ErrOrderAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	source, err := orderRepo.Get(ctx, cmd.SourceRef())
	if err != nil {
		return err
	}

	clone, err := source.Clone(cmd.NewRef(), time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, clone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
