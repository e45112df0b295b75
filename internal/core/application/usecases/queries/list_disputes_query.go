package queries

import (
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListDisputesQueryIsNotConstructed = errors.New(
		"ListDisputesQuery must be created via NewListDisputesQuery constructor",
	)
)

// ListDisputesQuery retrieves weight discrepancy disputes, optionally
// narrowed to one category. Pending disputes surface first so merchants
// see what still needs a decision before the auto-accept deadline.
type ListDisputesQuery struct {
	category dispute.Category
	filtered bool

	guard guard.ConstructorGuard
}

// NewListDisputesQuery creates a query for every dispute.
func NewListDisputesQuery() ListDisputesQuery {
	return ListDisputesQuery{guard: guard.NewConstructorGuard()}
}

// NewListDisputesQueryFiltered creates a query narrowed to the given category.
func NewListDisputesQueryFiltered(category dispute.Category) (ListDisputesQuery, error) {
	if err := category.Validate(); err != nil {
		return ListDisputesQuery{}, err
	}

	return ListDisputesQuery{
		category: category,
		filtered: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListDisputesQuery) Validate() error {
	return q.guard.Validate(ErrListDisputesQueryIsNotConstructed)
}

// CategoryFilter returns the category narrowing the listing and whether
// one was set.
func (q ListDisputesQuery) CategoryFilter() (dispute.Category, bool) {
	return q.category, q.filtered
}

// ListDisputesQueryResponse is one dispute row of the discrepancy desk.
type ListDisputesQueryResponse struct {
	ID            string
	OrderRef      string
	AWB           string
	Category      string
	EnteredWeight decimal.Decimal
	CarrierWeight decimal.Decimal
	ExcessCharge  decimal.Decimal
	IsPaid        bool
	CreatedAt     time.Time
	AutoAcceptAt  time.Time
}
