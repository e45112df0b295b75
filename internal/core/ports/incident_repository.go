package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
)

// IncidentRepository defines the persistence contract for non-delivery
// incidents.
type IncidentRepository interface {
	// Add persists a new incident.
	Add(ctx context.Context, incident *ndr.Incident) error

	// Update persists changes to an existing incident.
	Update(ctx context.Context, incident *ndr.Incident) error

	// Get retrieves an incident by id.
	Get(ctx context.Context, id kernel.UUID) (*ndr.Incident, error)

	// GetForUpdate retrieves an incident by id with a row lock, serializing
	// concurrent resolutions of the same incident.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*ndr.Incident, error)

	// GetOpenByOrderRef retrieves the open incident for an order, if any.
	// At most one incident per order is open at a time; repeat failed
	// attempts land on the existing one.
	GetOpenByOrderRef(ctx context.Context, orderRef string) (*ndr.Incident, error)
}
