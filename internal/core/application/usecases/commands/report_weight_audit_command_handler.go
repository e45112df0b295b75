package commands

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

var (
	// ErrOrderNotDispatched is returned when a weight audit is reported
	// against an order that has no AWB yet.
	ErrOrderNotDispatched = errors.New("order has not been dispatched")

	// ErrDisputeAlreadyOpen is returned when an audit is reported for an
	// order that already has a pending dispute.
	ErrDisputeAlreadyOpen = errors.New("a pending dispute already exists for this order")
)

// ReportWeightAuditCommandHandler opens weight disputes from carrier audits.
// Audits at or below the entered weight are dropped without creating a
// dispute; audits above it open one pending dispute per order with the
// auto-accept clock running.
type ReportWeightAuditCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewReportWeightAuditCommandHandler creates a handler for weight audit
// reports.
func NewReportWeightAuditCommandHandler(uowFactory DisputeUoWFactory) ReportWeightAuditCommandHandler {
	return ReportWeightAuditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weight audit report.
func (h ReportWeightAuditCommandHandler) Handle(ctx context.Context, cmd ReportWeightAuditCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	disputeRepo := uow.DisputeRepository()

	// The order row lock serializes concurrent audits for the same order so
	// the pending-dispute existence check below cannot race a second insert.
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}

	if aggregate.Courier() == nil {
		return ErrOrderNotDispatched
	}

	// No discrepancy in the merchant's disfavor, nothing to dispute.
	if !cmd.CarrierWeight().GreaterThan(aggregate.Parcel().WeightKg()) {
		return nil
	}

	_, err = disputeRepo.GetPendingByOrderRef(ctx, cmd.OrderRef())
	if err == nil {
		return ErrDisputeAlreadyOpen
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	d, err := dispute.NewDispute(
		kernel.NewUUID(),
		aggregate.Ref(),
		aggregate.AWB(),
		aggregate.Parcel().WeightKg(),
		cmd.CarrierWeight(),
		aggregate.Courier().Charges().Shipping(),
		cmd.CarrierCharge(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = disputeRepo.Add(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
