package orderrepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its content lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Ref(), aggregate)
	return nil
}

// Update saves an existing order to the database. Content lines are
// immutable after creation and are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Products = nil

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("ref = ?", dto.Ref).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Ref(), aggregate)
	return nil
}

// Get retrieves an order by its merchant reference.
func (r *GormOrderRepository) Get(ctx context.Context, ref string) (*order.Order, error) {
	return r.get(ctx, ref, false)
}

// GetForUpdate retrieves an order by its merchant reference and locks the
// row until the surrounding transaction completes.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, ref string) (*order.Order, error) {
	return r.get(ctx, ref, true)
}

func (r *GormOrderRepository) get(ctx context.Context, ref string, forUpdate bool) (*order.Order, error) {
	if ref == "" {
		return nil, errs.NewValueIsRequiredError("ref")
	}

	tx := r.db.WithContext(ctx).Preload("Products")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ref)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AWBExists reports whether the given air waybill number was already issued.
func (r *GormOrderRepository) AWBExists(ctx context.Context, awb string) (bool, error) {
	if awb == "" {
		return false, errs.NewValueIsRequiredError("awb")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("awb = ?", awb).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an order and its content lines from the database.
func (r *GormOrderRepository) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}

	if err := r.db.WithContext(ctx).Where("order_ref = ?", ref).Delete(&ProductDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{Ref: ref})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", ref)
	}

	return nil
}
