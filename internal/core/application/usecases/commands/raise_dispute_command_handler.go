package commands

import (
	"context"
	"time"
)

// RaiseDisputeCommandHandler records the merchant contesting a weight audit.
// No wallet mutation happens here; the dispute simply leaves the pending
// pool before the auto-accept deadline can claim it.
type RaiseDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewRaiseDisputeCommandHandler creates a handler for contest operations.
func NewRaiseDisputeCommandHandler(uowFactory DisputeUoWFactory) RaiseDisputeCommandHandler {
	return RaiseDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contest command.
func (h RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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

	disputeRepo := uow.DisputeRepository()

	d, err := disputeRepo.GetForUpdate(ctx, cmd.DisputeID())
	if err != nil {
		return err
	}

	if err = d.Reject(cmd.Remark(), cmd.Evidence(), time.Now()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
