package commands

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"
)

// ErrOrderNotInDelivery is returned when a failed attempt is reported against
// an order that is not with the carrier.
var ErrOrderNotInDelivery = errors.New("order is not in delivery")

// ReportFailedAttemptCommandHandler records failed delivery attempts.
// The first failure against an order opens an incident; repeat failures land
// on the existing open one, incrementing the attempt counter. The order
// status never changes here; it keeps its pre-failure status while the
// incident is open.
type ReportFailedAttemptCommandHandler struct {
	uowFactory IncidentUoWFactory
}

// NewReportFailedAttemptCommandHandler creates a handler for failed attempt
// reports.
func NewReportFailedAttemptCommandHandler(uowFactory IncidentUoWFactory) ReportFailedAttemptCommandHandler {
	return ReportFailedAttemptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failed attempt report.
// The order must be InTransit or OutForDelivery.
func (h ReportFailedAttemptCommandHandler) Handle(ctx context.Context, cmd ReportFailedAttemptCommand) error {
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
	incidentRepo := uow.IncidentRepository()

	// The order row lock serializes concurrent reports for the same order;
	// without it two racing webhooks could each miss the other's insert and
	// open two incidents.
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.InTransit && aggregate.Status() != order.OutForDelivery {
		return ErrOrderNotInDelivery
	}

	now := time.Now()

	incident, err := incidentRepo.GetOpenByOrderRef(ctx, cmd.OrderRef())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		incident, err = ndr.NewIncident(kernel.NewUUID(), cmd.OrderRef(), cmd.Reason(), now)
		if err != nil {
			return err
		}
		if err = incidentRepo.Add(ctx, incident); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = incident.RegisterAttempt(cmd.Reason(), now); err != nil {
			return err
		}
		if err = incidentRepo.Update(ctx, incident); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
