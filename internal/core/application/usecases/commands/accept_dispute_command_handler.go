package commands

import (
	"context"
	"fmt"
	"time"

	"shipdesk/internal/core/domain/model/dispute"
)

// AcceptDisputeCommandHandler settles pending weight disputes against the
// merchant wallet.
//
// The debit and the category change commit together: on insufficient funds
// the dispute stays pending and the error is surfaced, never silently marked
// resolved without payment. Row locks on the dispute and the wallet account
// guarantee at most one successful settlement per dispute.
type AcceptDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewAcceptDisputeCommandHandler creates a handler for dispute settlement.
func NewAcceptDisputeCommandHandler(uowFactory DisputeUoWFactory) AcceptDisputeCommandHandler {
	return AcceptDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept-and-pay command.
// Settling an already-resolved dispute fails with
// dispute.ErrDisputeAlreadyResolved.
func (h AcceptDisputeCommandHandler) Handle(ctx context.Context, cmd AcceptDisputeCommand) error {
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
	walletRepo := uow.WalletRepository()
	disputeRepo := uow.DisputeRepository()

	d, err := disputeRepo.GetForUpdate(ctx, cmd.DisputeID())
	if err != nil {
		return err
	}

	if !d.IsPending() {
		return &dispute.DisputeAlreadyResolvedError{DisputeID: d.ID(), Category: d.Category()}
	}

	aggregate, err := orderRepo.Get(ctx, d.OrderRef())
	if err != nil {
		return err
	}

	account, err := walletRepo.GetAccountForUpdate(ctx, aggregate.MerchantID())
	if err != nil {
		return err
	}

	now := time.Now()

	tx, err := account.Debit(
		d.ExcessCharge(),
		fmt.Sprintf("Weight Discrepancy Payment: %s", d.OrderRef()),
		d.OrderRef(),
		now,
	)
	if err != nil {
		return err
	}

	if err = d.MarkAccepted(true, now); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = walletRepo.UpdateAccount(ctx, account); err != nil {
		return err
	}

	if err = walletRepo.AddTransaction(ctx, *tx); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
