package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletStatementQueryHandler reads the wallet ledger directly from the
// wallet_transactions table.
type GetWalletStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletStatementQueryHandler creates a handler for statement queries.
func NewGetWalletStatementQueryHandler(db *gorm.DB) GetWalletStatementQueryHandler {
	return GetWalletStatementQueryHandler{db: db}
}

// Handle executes the query. An account with no entries yields an empty
// statement rather than an error.
func (h GetWalletStatementQueryHandler) Handle(
	ctx context.Context,
	query GetWalletStatementQuery,
) ([]GetWalletStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tx_type,
			amount,
			description,
			reference,
			created_at
		FROM wallet_transactions
		WHERE account_id = ?
		ORDER BY created_at DESC, id
	`, query.MerchantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetWalletStatementQueryResponse, 0)

	for rows.Next() {
		var entry GetWalletStatementQueryResponse
		var id uuid.UUID
		var txType int

		err = rows.Scan(
			&id,
			&txType,
			&entry.Amount,
			&entry.Description,
			&entry.Reference,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID = id.String()
		entry.Type = wallet.TransactionType(txType).String()

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
