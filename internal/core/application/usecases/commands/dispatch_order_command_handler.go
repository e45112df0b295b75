package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
)

// ErrAWBExhausted is returned when no unique AWB could be drawn within the
// attempt budget. Practically unreachable with a 9-digit serial space; it
// guards against a misconfigured prefix pool.
var ErrAWBExhausted = errors.New("could not allocate a unique awb")

// DispatchOrderCommandHandler orchestrates the dispatch workflow: courier
// rate lookup, charge calculation, AWB allocation, wallet debit and the
// order status transition.
//
// All-or-nothing: the AWB, the DEBIT ledger entry and the status change are
// committed together or not at all. On insufficient funds the order stays in
// its initial status and no AWB is allocated.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, rateCard, awbGenerator)
//	cmd, _ := NewDispatchOrderCommand("ORD-1001", merchantID, "c3")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCourierNotFound):
//	    // unknown courier id
//	case errors.Is(err, wallet.ErrInsufficientFunds):
//	    // merchant must top up first
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // order already dispatched or cancelled
//	}
type DispatchOrderCommandHandler struct {
	uowFactory   SettlementUoWFactory
	rateCard     ports.RateCard
	awbGenerator services.AWBGenerator
}

// NewDispatchOrderCommandHandler creates a handler for dispatch operations.
// Requires a SettlementUoWFactory for coordinating the order and wallet
// mutations in one transaction.
func NewDispatchOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	rateCard ports.RateCard,
	awbGenerator services.AWBGenerator,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory:   uowFactory,
		rateCard:     rateCard,
		awbGenerator: awbGenerator,
	}
}

// Handle processes the dispatch command.
// Locks the order and the wallet account, draws a unique AWB, computes the
// charges via the order dispatcher and debits the total from the wallet.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rate, err := h.rateCard.Get(cmd.CourierID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	walletRepo := uow.WalletRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}

	account, err := walletRepo.GetAccountForUpdate(ctx, cmd.MerchantID())
	if err != nil {
		return err
	}

	awb, err := h.allocateAWB(ctx, orderRepo, rate.AWBPrefix)
	if err != nil {
		return err
	}

	now := time.Now()
	charges, err := services.NewOrderDispatcher().Dispatch(aggregate, rate, awb, now)
	if err != nil {
		return err
	}

	tx, err := account.Debit(
		charges.Total(),
		fmt.Sprintf("Shipping Charge: %s", aggregate.Ref()),
		aggregate.Ref(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
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

// allocateAWB draws candidate numbers until one is unused, bounded by
// services.MaxAWBAttempts.
func (h DispatchOrderCommandHandler) allocateAWB(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	prefix string,
) (string, error) {
	for range services.MaxAWBAttempts {
		awb, err := h.awbGenerator.Generate(prefix)
		if err != nil {
			return "", err
		}

		exists, err := orderRepo.AWBExists(ctx, awb)
		if err != nil {
			return "", err
		}
		if !exists {
			return awb, nil
		}
	}

	return "", ErrAWBExhausted
}
