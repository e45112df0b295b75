package commands

import (
	"context"
	"time"
)

// CreditWalletCommandHandler handles wallet top-ups.
type CreditWalletCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewCreditWalletCommandHandler creates a handler for top-up operations.
func NewCreditWalletCommandHandler(uowFactory WalletUoWFactory) CreditWalletCommandHandler {
	return CreditWalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command.
// The balance mutation and its CREDIT ledger entry commit together.
func (h CreditWalletCommandHandler) Handle(ctx context.Context, cmd CreditWalletCommand) error {
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

	walletRepo := uow.WalletRepository()

	account, err := walletRepo.GetAccountForUpdate(ctx, cmd.MerchantID())
	if err != nil {
		return err
	}

	tx, err := account.Credit(cmd.Amount(), cmd.Description(), "", time.Now())
	if err != nil {
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
