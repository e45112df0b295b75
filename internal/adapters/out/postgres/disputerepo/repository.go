package disputerepo

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispute to the database.
func (r *GormDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(d.ID().String(), d)
	return nil
}

// Update saves an existing dispute to the database.
func (r *GormDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(d.ID().String(), d)
	return nil
}

// Get retrieves a dispute by id.
func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a dispute by id and locks its row until the
// surrounding transaction completes.
func (r *GormDisputeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	return r.get(ctx, id, true)
}

func (r *GormDisputeRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DisputeDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrderRef retrieves the pending dispute for an order.
// An order carries at most one pending dispute.
func (r *GormDisputeRepository) GetPendingByOrderRef(ctx context.Context, orderRef string) (*dispute.Dispute, error) {
	if orderRef == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}

	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_ref = ? AND category = ?", orderRef, int(dispute.CategoryPending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending dispute", orderRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllExpired retrieves pending disputes whose auto-accept deadline has
// passed, locking their rows so a concurrent accept cannot settle the same
// dispute twice.
func (r *GormDisputeRepository) GetAllExpired(ctx context.Context, now time.Time) ([]*dispute.Dispute, error) {
	var dtos []DisputeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "category = ? AND auto_accept_at <= ?", int(dispute.CategoryPending), now).Error
	if err != nil {
		return nil, err
	}

	disputes := make([]*dispute.Dispute, 0, len(dtos))
	for _, dto := range dtos {
		d, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		disputes = append(disputes, d)
	}

	return disputes, nil
}
