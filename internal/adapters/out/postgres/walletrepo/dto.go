// Package walletrepo persists merchant wallet accounts and their
// append-only ledger.
package walletrepo

import (
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO represents the database structure for a merchant wallet.
// The account id is the merchant id; one wallet per merchant.
type AccountDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Balance decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for wallet accounts.
func (AccountDTO) TableName() string {
	return "wallet_accounts"
}

// TransactionDTO represents one ledger entry. Rows are insert-only; the
// signed amount carries the entry's effect on the balance.
type TransactionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric"`
	TxType      int
	Description string
	Reference   string
	CreatedAt   time.Time
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "wallet_transactions"
}

func accountFromDomain(account *wallet.Account) AccountDTO {
	return AccountDTO{
		ID:      account.ID().Bytes(),
		Balance: account.Balance().Decimal(),
	}
}

func accountToDomain(dto AccountDTO) (*wallet.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return wallet.RestoreAccount(id, kernel.NewMoney(dto.Balance))
}

func transactionFromDomain(tx wallet.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID().Bytes(),
		AccountID:   tx.AccountID().Bytes(),
		Amount:      tx.Amount().Decimal(),
		TxType:      int(tx.Type()),
		Description: tx.Description(),
		Reference:   tx.Reference(),
		CreatedAt:   tx.CreatedAt(),
	}
}
