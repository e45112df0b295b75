package queries

import (
	"errors"
	"time"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail view of a single order by its
// merchant reference, including content lines and courier assignment.
type GetOrderQuery struct {
	ref string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given reference.
func NewGetOrderQuery(ref string) (GetOrderQuery, error) {
	if ref == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("ref")
	}

	return GetOrderQuery{
		ref:   ref,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Ref returns the merchant order reference.
func (q GetOrderQuery) Ref() string { return q.ref }

// GetOrderQueryProductResponse is one content line of the order detail.
type GetOrderQueryProductResponse struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

// GetOrderQueryCourierResponse is the dispatch section of the order
// detail. Present only after the order has been dispatched.
type GetOrderQueryCourierResponse struct {
	CourierID   string
	CourierName string
	Mode        string
	AWB         string
	Shipping    decimal.Decimal
	Insurance   decimal.Decimal
	COD         decimal.Decimal
	Total       decimal.Decimal
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	Ref               string
	MerchantID        string
	Status            string
	Payment           string
	Insured           bool
	DeclaredValue     decimal.Decimal
	WeightKg          decimal.Decimal
	LengthCm          int
	WidthCm           int
	HeightCm          int
	PickupLocation    string
	DestName          string
	DestPhone         string
	DestAddress       string
	DestPostalCode    string
	DestCountry       string
	Products          []GetOrderQueryProductResponse
	Courier           *GetOrderQueryCourierResponse
	CreatedAt         time.Time
	StatusChangedAt   time.Time
	PickupScheduledAt *time.Time
}
