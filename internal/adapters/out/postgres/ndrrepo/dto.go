// Package ndrrepo persists non-delivery incidents.
package ndrrepo

import (
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"

	"github.com/google/uuid"
)

// IncidentDTO represents the database structure for a delivery failure
// incident. The partial state lives in the status and attempts columns;
// resolved_at stays NULL while the incident is open.
type IncidentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRef      string    `gorm:"index"`
	Reason        int
	Attempts      int
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	LastAttemptAt time.Time
	ResolvedAt    *time.Time
}

// TableName specifies the database table name for incidents.
func (IncidentDTO) TableName() string {
	return "ndr_incidents"
}

func fromDomain(incident *ndr.Incident) IncidentDTO {
	return IncidentDTO{
		ID:            incident.ID().Bytes(),
		OrderRef:      incident.OrderRef(),
		Reason:        int(incident.Reason()),
		Attempts:      incident.Attempts(),
		Status:        int(incident.Status()),
		CreatedAt:     incident.CreatedAt(),
		LastAttemptAt: incident.LastAttemptAt(),
		ResolvedAt:    incident.ResolvedAt(),
	}
}

func toDomain(dto IncidentDTO) (*ndr.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ndr.RestoreIncident(
		id,
		dto.OrderRef,
		ndr.FailureReason(dto.Reason),
		dto.Attempts,
		ndr.IncidentStatus(dto.Status),
		dto.CreatedAt,
		dto.LastAttemptAt,
		dto.ResolvedAt,
	)
}
