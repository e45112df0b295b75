package queries

import (
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetWalletStatementQueryIsNotConstructed = errors.New(
		"GetWalletStatementQuery must be created via NewGetWalletStatementQuery constructor",
	)
)

// GetWalletStatementQuery retrieves the ledger of a merchant wallet,
// newest entry first.
//
// Example:
//
//	query, err := queries.NewGetWalletStatementQuery(merchantID)
//	if err != nil {
//	    return err
//	}
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read statement: %w", err)
//	}
//
//	for _, entry := range entries {
//	    fmt.Printf("%s %s %s\n", entry.Type, entry.Amount, entry.Description)
//	}
type GetWalletStatementQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletStatementQuery creates a statement query for the merchant.
func NewGetWalletStatementQuery(merchantID kernel.UUID) (GetWalletStatementQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetWalletStatementQuery{}, err
	}

	return GetWalletStatementQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletStatementQueryIsNotConstructed)
}

// MerchantID returns the wallet owner.
func (q GetWalletStatementQuery) MerchantID() kernel.UUID { return q.merchantID }

// GetWalletStatementQueryResponse is one ledger entry of the statement.
// Debits carry a negative amount.
type GetWalletStatementQueryResponse struct {
	ID          string
	Type        string
	Amount      decimal.Decimal
	Description string
	Reference   string
	CreatedAt   time.Time
}
