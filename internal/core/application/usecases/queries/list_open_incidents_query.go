package queries

import (
	"errors"
	"time"

	"shipdesk/internal/pkg/guard"
)

var (
	ErrListOpenIncidentsQueryIsNotConstructed = errors.New(
		"ListOpenIncidentsQuery must be created via NewListOpenIncidentsQuery constructor",
	)
)

// ListOpenIncidentsQuery retrieves every delivery failure awaiting a
// resolution decision, oldest first so the longest-waiting shipments are
// worked first.
type ListOpenIncidentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenIncidentsQuery creates the parameterless open-incident query.
func NewListOpenIncidentsQuery() ListOpenIncidentsQuery {
	return ListOpenIncidentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOpenIncidentsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenIncidentsQueryIsNotConstructed)
}

// ListOpenIncidentsQueryResponse is one open delivery failure, joined with
// the destination contact of the affected order.
type ListOpenIncidentsQueryResponse struct {
	ID            string
	OrderRef      string
	Reason        string
	Attempts      int
	DestName      string
	DestPhone     string
	CreatedAt     time.Time
	LastAttemptAt time.Time
}
