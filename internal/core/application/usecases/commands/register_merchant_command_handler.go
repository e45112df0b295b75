package commands

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/wallet"
	"shipdesk/internal/pkg/errs"
)

// ErrMerchantAlreadyRegistered is returned when the merchant already has a
// wallet account.
var ErrMerchantAlreadyRegistered = errors.New("merchant is already registered")

// openingBalance is the promotional credit every new merchant wallet starts
// with.
var openingBalance = kernel.MoneyFromFloat(5000)

// RegisterMerchantCommandHandler opens merchant wallet accounts.
// The opening balance is recorded by an opening CREDIT entry so the ledger
// law holds from the first transaction.
type RegisterMerchantCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewRegisterMerchantCommandHandler creates a handler for merchant
// registration.
func NewRegisterMerchantCommandHandler(uowFactory WalletUoWFactory) RegisterMerchantCommandHandler {
	return RegisterMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterMerchantCommandHandler) Handle(ctx context.Context, cmd RegisterMerchantCommand) error {
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

	_, err := walletRepo.GetAccount(ctx, cmd.MerchantID())
	if err == nil {
		return ErrMerchantAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, opening, err := wallet.NewAccount(cmd.MerchantID(), openingBalance, time.Now())
	if err != nil {
		return err
	}

	if err = walletRepo.AddAccount(ctx, account); err != nil {
		return err
	}

	if opening != nil {
		if err = walletRepo.AddTransaction(ctx, *opening); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
