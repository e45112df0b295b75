// Package ports defines repository interfaces for the settlement engine.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by their merchant-assigned reference.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its reference must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its reference.
	Get(ctx context.Context, ref string) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its reference and locks the
	// row for the duration of the surrounding transaction. Used by operations
	// that read-then-write a single order, so that two concurrent dispatch
	// attempts cannot both succeed.
	GetForUpdate(ctx context.Context, ref string) (*order.Order, error)

	// AWBExists reports whether the given air waybill number was already
	// issued to any order.
	AWBExists(ctx context.Context, awb string) (bool, error)

	// Delete removes an order aggregate from storage. Only orders the domain
	// marks deletable may be removed; the caller checks before deleting.
	Delete(ctx context.Context, ref string) error
}
