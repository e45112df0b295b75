package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// OrderFilter narrows an order listing. The zero value selects everything.
// Search matches the order reference, the AWB, and the receiver name.
type OrderFilter struct {
	Status *order.Status
	From   *time.Time
	To     *time.Time
	Search string
}

// ListOrdersQuery retrieves the order book of a single merchant, newest
// first, narrowed by the optional filter.
//
// Example:
//
//	status := order.InTransit
//	query, err := queries.NewListOrdersQuery(merchantID, queries.OrderFilter{Status: &status})
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct {
	merchantID kernel.UUID
	filter     OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the merchant's orders matching the
// filter.
func NewListOrdersQuery(merchantID kernel.UUID, filter OrderFilter) (ListOrdersQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("date range ends (%s) before it starts (%s)", filter.To, filter.From))
	}
	filter.Search = strings.TrimSpace(filter.Search)

	return ListOrdersQuery{
		merchantID: merchantID,
		filter:     filter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// MerchantID returns the owning merchant.
func (q ListOrdersQuery) MerchantID() kernel.UUID { return q.merchantID }

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

// ListOrdersQueryResponse is one row of the merchant's order book.
// Courier fields are empty until the order has been dispatched.
type ListOrdersQueryResponse struct {
	Ref             string
	Status          string
	Payment         string
	DeclaredValue   decimal.Decimal
	DestinationName string
	CourierName     string
	AWB             string
	CreatedAt       time.Time
}
