package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipdesk/internal/core/domain/model/wallet"
)

// SweepExpiredDisputesCommandHandler applies the auto-accept policy: pending
// disputes past their deadline are treated as accepted.
//
// The sweep is idempotent. Expired disputes are selected under row locks and
// leave the pending pool as soon as they are settled, so a second run (or a
// concurrent one) finds nothing to double-debit. A wallet that cannot cover
// the excess charge leaves its dispute pending; the next run retries it.
type SweepExpiredDisputesCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewSweepExpiredDisputesCommandHandler creates a handler for the sweep.
func NewSweepExpiredDisputesCommandHandler(uowFactory DisputeUoWFactory) SweepExpiredDisputesCommandHandler {
	return SweepExpiredDisputesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. Returns how many disputes were settled.
func (h SweepExpiredDisputesCommandHandler) Handle(ctx context.Context, cmd SweepExpiredDisputesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	walletRepo := uow.WalletRepository()
	disputeRepo := uow.DisputeRepository()

	now := time.Now()

	expired, err := disputeRepo.GetAllExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	settled := 0
	for _, d := range expired {
		aggregate, err := orderRepo.Get(ctx, d.OrderRef())
		if err != nil {
			return settled, err
		}

		account, err := walletRepo.GetAccountForUpdate(ctx, aggregate.MerchantID())
		if err != nil {
			return settled, err
		}

		tx, err := account.Debit(
			d.ExcessCharge(),
			fmt.Sprintf("Weight Discrepancy Payment: %s", d.OrderRef()),
			d.OrderRef(),
			now,
		)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			// Left pending; the next run retries once the wallet is topped up.
			continue
		}
		if err != nil {
			return settled, err
		}

		if err = d.MarkAccepted(true, now); err != nil {
			return settled, err
		}

		if err = disputeRepo.Update(ctx, d); err != nil {
			return settled, err
		}

		if err = walletRepo.UpdateAccount(ctx, account); err != nil {
			return settled, err
		}
		if err = walletRepo.AddTransaction(ctx, *tx); err != nil {
			return settled, err
		}

		settled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return settled, nil
}
