package walletrepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/wallet"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAccount saves a new wallet account to the database.
func (r *GormWalletRepository) AddAccount(ctx context.Context, account *wallet.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.ID().String(), account)
	return nil
}

// UpdateAccount saves the balance of an existing wallet account.
func (r *GormWalletRepository) UpdateAccount(ctx context.Context, account *wallet.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Update("balance", dto.Balance)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(account.ID().String(), account)
	return nil
}

// GetAccount retrieves a wallet account by merchant id.
func (r *GormWalletRepository) GetAccount(ctx context.Context, id kernel.UUID) (*wallet.Account, error) {
	return r.getAccount(ctx, id, false)
}

// GetAccountForUpdate retrieves a wallet account and locks its row until
// the surrounding transaction completes.
func (r *GormWalletRepository) GetAccountForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Account, error) {
	return r.getAccount(ctx, id, true)
}

func (r *GormWalletRepository) getAccount(ctx context.Context, id kernel.UUID, forUpdate bool) (*wallet.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AccountDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet account", id.String())
		}
		return nil, err
	}

	return accountToDomain(dto)
}

// AddTransaction appends a ledger entry. Entries are never updated or deleted.
func (r *GormWalletRepository) AddTransaction(ctx context.Context, tx wallet.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}
