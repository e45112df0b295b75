package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the wire shape of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money fields bind as decimal.Decimal: shopspring accepts both JSON
// numbers and strings, so clients may send either.

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Ref            string               `json:"ref"`
	DeclaredValue  decimal.Decimal      `json:"declared_value"`
	Payment        string               `json:"payment"`
	Insured        bool                 `json:"insured"`
	WeightKg       decimal.Decimal      `json:"weight_kg"`
	LengthCm       int                  `json:"length_cm"`
	WidthCm        int                  `json:"width_cm"`
	HeightCm       int                  `json:"height_cm"`
	PickupLocation string               `json:"pickup_location"`
	Destination    DestinationRequest   `json:"destination"`
	Products       []ProductLineRequest `json:"products"`
}

// DestinationRequest is the consignee section of an order body.
type DestinationRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ProductLineRequest is one product line of an order body.
type ProductLineRequest struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DispatchOrderRequest is the body of POST /orders/:ref/dispatch.
type DispatchOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// SchedulePickupRequest is the body of POST /orders/pickups.
type SchedulePickupRequest struct {
	OrderRefs []string `json:"order_refs"`
}

// PickupItemResult reports the outcome for one order of a pickup batch.
type PickupItemResult struct {
	OrderRef  string `json:"order_ref"`
	Scheduled bool   `json:"scheduled"`
	Error     string `json:"error,omitempty"`
}

// TrackingEventRequest is the body of POST /orders/:ref/tracking-events.
type TrackingEventRequest struct {
	Event string `json:"event"`
}

// CloneOrderRequest is the body of POST /orders/:ref/clone.
type CloneOrderRequest struct {
	NewRef string `json:"new_ref"`
}

// ReportNDRRequest is the body of POST /orders/:ref/ndr.
type ReportNDRRequest struct {
	Reason string `json:"reason"`
}

// ResolveIncidentRequest is the body of POST /ndr/:id/resolve.
type ResolveIncidentRequest struct {
	Action string `json:"action"`
}

// WeightAuditRequest is the body of POST /orders/:ref/weight-audit.
type WeightAuditRequest struct {
	CarrierWeight decimal.Decimal `json:"carrier_weight"`
	CarrierCharge decimal.Decimal `json:"carrier_charge"`
}

// RaiseDisputeRequest is the body of POST /disputes/:id/dispute.
type RaiseDisputeRequest struct {
	Remark   string   `json:"remark"`
	Evidence []string `json:"evidence"`
}

// CreditWalletRequest is the body of POST /wallet/:id/credit.
type CreditWalletRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// RegisterMerchantRequest is the body of POST /merchants.
type RegisterMerchantRequest struct {
	MerchantID string `json:"merchant_id"`
}

// OrderSummary is one row of GET /orders.
type OrderSummary struct {
	Ref             string          `json:"ref"`
	Status          string          `json:"status"`
	Payment         string          `json:"payment"`
	DeclaredValue   decimal.Decimal `json:"declared_value"`
	DestinationName string          `json:"destination_name"`
	CourierName     string          `json:"courier_name,omitempty"`
	AWB             string          `json:"awb,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderDetail is the response of GET /orders/:ref.
type OrderDetail struct {
	Ref               string              `json:"ref"`
	MerchantID        string              `json:"merchant_id"`
	Status            string              `json:"status"`
	Payment           string              `json:"payment"`
	Insured           bool                `json:"insured"`
	DeclaredValue     decimal.Decimal     `json:"declared_value"`
	WeightKg          decimal.Decimal     `json:"weight_kg"`
	LengthCm          int                 `json:"length_cm"`
	WidthCm           int                 `json:"width_cm"`
	HeightCm          int                 `json:"height_cm"`
	PickupLocation    string              `json:"pickup_location"`
	Destination       DestinationRequest  `json:"destination"`
	Products          []ProductLineDetail `json:"products"`
	Courier           *CourierDetail      `json:"courier,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	StatusChangedAt   time.Time           `json:"status_changed_at"`
	PickupScheduledAt *time.Time          `json:"pickup_scheduled_at,omitempty"`
}

// ProductLineDetail is one product line of an order detail.
type ProductLineDetail struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CourierDetail is the dispatch section of an order detail.
type CourierDetail struct {
	CourierID   string          `json:"courier_id"`
	CourierName string          `json:"courier_name"`
	Mode        string          `json:"mode"`
	AWB         string          `json:"awb"`
	Shipping    decimal.Decimal `json:"shipping"`
	Insurance   decimal.Decimal `json:"insurance"`
	COD         decimal.Decimal `json:"cod"`
	Total       decimal.Decimal `json:"total"`
}

// WalletBalance is the response of GET /wallet/:id/balance.
type WalletBalance struct {
	MerchantID string          `json:"merchant_id"`
	Balance    decimal.Decimal `json:"balance"`
}

// WalletTransaction is one row of GET /wallet/:id/transactions.
type WalletTransaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NDRIncident is one row of GET /ndr.
type NDRIncident struct {
	ID            string    `json:"id"`
	OrderRef      string    `json:"order_ref"`
	Reason        string    `json:"reason"`
	Attempts      int       `json:"attempts"`
	DestName      string    `json:"dest_name"`
	DestPhone     string    `json:"dest_phone"`
	CreatedAt     time.Time `json:"created_at"`
	LastAttemptAt time.Time `json:"last_attempt_at"`
}

// WeightDispute is one row of GET /disputes.
type WeightDispute struct {
	ID            string          `json:"id"`
	OrderRef      string          `json:"order_ref"`
	AWB           string          `json:"awb"`
	Category      string          `json:"category"`
	EnteredWeight decimal.Decimal `json:"entered_weight"`
	CarrierWeight decimal.Decimal `json:"carrier_weight"`
	ExcessCharge  decimal.Decimal `json:"excess_charge"`
	IsPaid        bool            `json:"is_paid"`
	CreatedAt     time.Time       `json:"created_at"`
	AutoAcceptAt  time.Time       `json:"auto_accept_at"`
}
