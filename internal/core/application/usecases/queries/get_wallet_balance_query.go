package queries

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetWalletBalanceQueryIsNotConstructed = errors.New(
		"GetWalletBalanceQuery must be created via NewGetWalletBalanceQuery constructor",
	)
)

// GetWalletBalanceQuery retrieves the current wallet balance of a merchant.
type GetWalletBalanceQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletBalanceQuery creates a balance query for the merchant.
func NewGetWalletBalanceQuery(merchantID kernel.UUID) (GetWalletBalanceQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetWalletBalanceQuery{}, err
	}

	return GetWalletBalanceQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletBalanceQueryIsNotConstructed)
}

// MerchantID returns the wallet owner.
func (q GetWalletBalanceQuery) MerchantID() kernel.UUID { return q.merchantID }

// GetWalletBalanceQueryResponse carries the merchant's spendable balance.
type GetWalletBalanceQueryResponse struct {
	MerchantID string
	Balance    decimal.Decimal
}
