package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/dispute"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListDisputesQueryHandler reads the discrepancy desk from the
// weight_disputes table.
type ListDisputesQueryHandler struct {
	db *gorm.DB
}

// NewListDisputesQueryHandler creates a handler for dispute listings.
func NewListDisputesQueryHandler(db *gorm.DB) ListDisputesQueryHandler {
	return ListDisputesQueryHandler{db: db}
}

// Handle executes the listing. Pending disputes sort before resolved ones,
// each group ordered by the auto-accept deadline.
func (h ListDisputesQueryHandler) Handle(
	ctx context.Context,
	query ListDisputesQuery,
) ([]ListDisputesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			order_ref,
			awb,
			category,
			entered_weight,
			carrier_weight,
			carrier_charge - entered_charge,
			is_paid,
			created_at,
			auto_accept_at
		FROM weight_disputes`
	args := make([]any, 0, 1)

	if category, ok := query.CategoryFilter(); ok {
		sqlText += `
		WHERE category = ?`
		args = append(args, int(category))
	}
	sqlText += `
		ORDER BY category, auto_accept_at`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	disputes := make([]ListDisputesQueryResponse, 0)

	for rows.Next() {
		var resp ListDisputesQueryResponse
		var id uuid.UUID
		var category int
		var excessCharge decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.OrderRef,
			&resp.AWB,
			&category,
			&resp.EnteredWeight,
			&resp.CarrierWeight,
			&excessCharge,
			&resp.IsPaid,
			&resp.CreatedAt,
			&resp.AutoAcceptAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		resp.Category = dispute.Category(category).String()
		resp.ExcessCharge = excessCharge

		disputes = append(disputes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return disputes, nil
}
