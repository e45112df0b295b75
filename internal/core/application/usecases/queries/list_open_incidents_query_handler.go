package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/ndr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOpenIncidentsQueryHandler reads the open delivery failures from the
// ndr_incidents table, joined with the affected orders for contact data.
type ListOpenIncidentsQueryHandler struct {
	db *gorm.DB
}

// NewListOpenIncidentsQueryHandler creates a handler for open-incident queries.
func NewListOpenIncidentsQueryHandler(db *gorm.DB) ListOpenIncidentsQueryHandler {
	return ListOpenIncidentsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOpenIncidentsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenIncidentsQuery,
) ([]ListOpenIncidentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_ref,
			i.reason,
			i.attempts,
			o.dest_name,
			o.dest_phone,
			i.created_at,
			i.last_attempt_at
		FROM ndr_incidents i
		JOIN orders o ON o.ref = i.order_ref
		WHERE i.status = ?
		ORDER BY i.created_at
	`, int(ndr.StatusOpen)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incidents := make([]ListOpenIncidentsQueryResponse, 0)

	for rows.Next() {
		var incident ListOpenIncidentsQueryResponse
		var id uuid.UUID
		var reason int

		err = rows.Scan(
			&id,
			&incident.OrderRef,
			&reason,
			&incident.Attempts,
			&incident.DestName,
			&incident.DestPhone,
			&incident.CreatedAt,
			&incident.LastAttemptAt,
		)
		if err != nil {
			return nil, err
		}

		incident.ID = id.String()
		incident.Reason = ndr.FailureReason(reason).String()

		incidents = append(incidents, incident)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return incidents, nil
}
