package ndrrepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIncidentRepository implements IncidentRepository using GORM.
type GormIncidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormIncidentRepository creates a new GORM incident repository.
func NewGormIncidentRepository(db *gorm.DB, tracker aggregateTracker) *GormIncidentRepository {
	return &GormIncidentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new incident to the database.
func (r *GormIncidentRepository) Add(ctx context.Context, incident *ndr.Incident) error {
	if err := incident.Validate(); err != nil {
		return err
	}

	dto := fromDomain(incident)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(incident.ID().String(), incident)
	return nil
}

// Update saves an existing incident to the database.
func (r *GormIncidentRepository) Update(ctx context.Context, incident *ndr.Incident) error {
	if err := incident.Validate(); err != nil {
		return err
	}

	dto := fromDomain(incident)
	result := r.db.WithContext(ctx).Model(&IncidentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(incident.ID().String(), incident)
	return nil
}

// Get retrieves an incident by id.
func (r *GormIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Incident, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an incident by id with SELECT ... FOR UPDATE,
// serializing concurrent resolutions of the same incident.
func (r *GormIncidentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*ndr.Incident, error) {
	return r.get(ctx, id, true)
}

func (r *GormIncidentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*ndr.Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto IncidentDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("incident", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByOrderRef retrieves the open incident for an order.
// At most one incident per order is open at a time.
func (r *GormIncidentRepository) GetOpenByOrderRef(ctx context.Context, orderRef string) (*ndr.Incident, error) {
	if orderRef == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}

	var dto IncidentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_ref = ? AND status = ?", orderRef, int(ndr.StatusOpen)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open incident", orderRef)
		}
		return nil, err
	}

	return toDomain(dto)
}
