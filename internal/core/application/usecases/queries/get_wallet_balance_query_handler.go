package queries

import (
	"context"

	"shipdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWalletBalanceQueryHandler reads the wallet balance directly from the
// wallet_accounts table.
type GetWalletBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletBalanceQueryHandler creates a handler for balance queries.
func NewGetWalletBalanceQueryHandler(db *gorm.DB) GetWalletBalanceQueryHandler {
	return GetWalletBalanceQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the
// merchant has no wallet account.
func (h GetWalletBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetWalletBalanceQuery,
) (GetWalletBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM wallet_accounts
		WHERE id = ?
	`, query.MerchantID().Bytes()).Rows()
	if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetWalletBalanceQueryResponse{}, err
		}
		return GetWalletBalanceQueryResponse{},
			errs.NewObjectNotFoundError("merchantID", query.MerchantID().String())
	}

	var balance decimal.Decimal
	if err = rows.Scan(&balance); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	if err = rows.Err(); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	return GetWalletBalanceQueryResponse{
		MerchantID: query.MerchantID().String(),
		Balance:    balance,
	}, nil
}
