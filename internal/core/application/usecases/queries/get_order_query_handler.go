package queries

import (
	"context"
	"database/sql"

	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler assembles the order detail view from the orders
// and order_products tables.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// carries the requested reference.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ref,
			merchant_id,
			status,
			payment,
			insured,
			declared_value,
			weight_kg,
			length_cm,
			width_cm,
			height_cm,
			pickup_location,
			dest_name,
			dest_phone,
			dest_address,
			dest_postal_code,
			dest_country,
			courier_id,
			courier_name,
			courier_mode,
			awb,
			charge_shipping,
			charge_insurance,
			charge_cod,
			charge_total,
			created_at,
			status_changed_at,
			pickup_scheduled_at
		FROM orders
		WHERE ref = ?
	`, query.Ref()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("ref", query.Ref())
	}

	var resp GetOrderQueryResponse
	var merchantID uuid.UUID
	var status, payment int
	var courierID, courierName, awb sql.NullString
	var courierMode sql.NullInt64
	var chargeShipping, chargeInsurance, chargeCOD, chargeTotal decimal.NullDecimal
	var pickupScheduledAt sql.NullTime

	err = rows.Scan(
		&resp.Ref,
		&merchantID,
		&status,
		&payment,
		&resp.Insured,
		&resp.DeclaredValue,
		&resp.WeightKg,
		&resp.LengthCm,
		&resp.WidthCm,
		&resp.HeightCm,
		&resp.PickupLocation,
		&resp.DestName,
		&resp.DestPhone,
		&resp.DestAddress,
		&resp.DestPostalCode,
		&resp.DestCountry,
		&courierID,
		&courierName,
		&courierMode,
		&awb,
		&chargeShipping,
		&chargeInsurance,
		&chargeCOD,
		&chargeTotal,
		&resp.CreatedAt,
		&resp.StatusChangedAt,
		&pickupScheduledAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.MerchantID = merchantID.String()
	resp.Status = order.Status(status).String()
	resp.Payment = order.PaymentMethod(payment).String()

	if courierID.Valid {
		resp.Courier = &GetOrderQueryCourierResponse{
			CourierID:   courierID.String,
			CourierName: courierName.String,
			Mode:        order.TransportMode(courierMode.Int64).String(),
			AWB:         awb.String,
			Shipping:    chargeShipping.Decimal,
			Insurance:   chargeInsurance.Decimal,
			COD:         chargeCOD.Decimal,
			Total:       chargeTotal.Decimal,
		}
	}

	if pickupScheduledAt.Valid {
		at := pickupScheduledAt.Time
		resp.PickupScheduledAt = &at
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	products, err := h.loadProducts(ctx, resp.Ref)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Products = products

	return resp, nil
}

func (h GetOrderQueryHandler) loadProducts(
	ctx context.Context,
	ref string,
) ([]GetOrderQueryProductResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			sku,
			quantity,
			unit_price
		FROM order_products
		WHERE order_ref = ?
		ORDER BY id
	`, ref).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetOrderQueryProductResponse, 0)

	for rows.Next() {
		var product GetOrderQueryProductResponse

		err = rows.Scan(
			&product.Name,
			&product.SKU,
			&product.Quantity,
			&product.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
