package queries

import (
	"context"
	"database/sql"

	"shipdesk/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the merchant order book straight from the
// database, bypassing the aggregate layer.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order book queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Rows come back newest first so the most
// recent shipments lead the merchant dashboard.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			ref,
			status,
			payment,
			declared_value,
			dest_name,
			courier_name,
			awb,
			created_at
		FROM orders
		WHERE merchant_id = ?`
	args := []any{query.MerchantID().Bytes()}

	filter := query.Filter()
	if filter.Status != nil {
		sqlText += ` AND status = ?`
		args = append(args, int(*filter.Status))
	}
	if filter.From != nil {
		sqlText += ` AND created_at >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		sqlText += ` AND created_at < ?`
		args = append(args, *filter.To)
	}
	if filter.Search != "" {
		sqlText += ` AND (ref ILIKE ? OR awb ILIKE ? OR dest_name ILIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	sqlText += ` ORDER BY created_at DESC, ref DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var status, payment int
		var declaredValue decimal.Decimal
		var courierName, awb sql.NullString

		err = rows.Scan(
			&resp.Ref,
			&status,
			&payment,
			&declaredValue,
			&resp.DestinationName,
			&courierName,
			&awb,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.Payment = order.PaymentMethod(payment).String()
		resp.DeclaredValue = declaredValue
		resp.CourierName = courierName.String
		resp.AWB = awb.String

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
