package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallet accounts and
// their append-only ledger. Balance mutations and the transactions recording
// them are persisted together inside the surrounding unit of work.
type WalletRepository interface {
	// AddAccount persists a new wallet account.
	AddAccount(ctx context.Context, account *wallet.Account) error

	// UpdateAccount persists the balance of an existing wallet account.
	UpdateAccount(ctx context.Context, account *wallet.Account) error

	// GetAccount retrieves a wallet account by merchant id.
	GetAccount(ctx context.Context, id kernel.UUID) (*wallet.Account, error)

	// GetAccountForUpdate retrieves a wallet account and locks its row for the
	// duration of the surrounding transaction, so that two concurrent debits
	// cannot both read a stale balance.
	GetAccountForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Account, error)

	// AddTransaction appends a ledger entry. Entries are immutable; there is
	// no update or delete.
	AddTransaction(ctx context.Context, tx wallet.Transaction) error
}
