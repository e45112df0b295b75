package ports

import (
	"context"
	"time"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for weight disputes.
type DisputeRepository interface {
	// Add persists a new dispute.
	Add(ctx context.Context, d *dispute.Dispute) error

	// Update persists changes to an existing dispute.
	Update(ctx context.Context, d *dispute.Dispute) error

	// Get retrieves a dispute by id.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetForUpdate retrieves a dispute by id and locks its row for the
	// duration of the surrounding transaction, so that accept-and-pay and the
	// auto-accept sweep cannot both settle the same dispute.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetPendingByOrderRef retrieves the pending dispute for an order, if any.
	GetPendingByOrderRef(ctx context.Context, orderRef string) (*dispute.Dispute, error)

	// GetAllExpired retrieves pending disputes whose auto-accept deadline has
	// passed, locking their rows for the surrounding transaction.
	GetAllExpired(ctx context.Context, now time.Time) ([]*dispute.Dispute, error)
}
