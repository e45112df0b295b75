package http

import (
	"net/http"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ReportWeightAudit handles POST /api/v1/orders/:ref/weight-audit - records
// the carrier's remeasured weight and opens a dispute when it exceeds the
// entered weight.
func (s *Server) ReportWeightAudit(ctx echo.Context) error {
	var req WeightAuditRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportWeightAuditCommand(
		ctx.Param("ref"),
		req.CarrierWeight,
		kernel.NewMoney(req.CarrierCharge),
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.reportWeightAuditHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListDisputes handles GET /api/v1/disputes - lists weight disputes,
// pending first. Supports ?category= to narrow to one category.
func (s *Server) ListDisputes(ctx echo.Context) error {
	query := queries.NewListDisputesQuery()

	if raw := ctx.QueryParam("category"); raw != "" {
		category, err := dispute.CategoryFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		filtered, err := queries.NewListDisputesQueryFiltered(category)
		if err != nil {
			return fail(ctx, err)
		}
		query = filtered
	}

	disputes, err := s.listDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]WeightDispute, len(disputes))
	for i, d := range disputes {
		response[i] = WeightDispute{
			ID:            d.ID,
			OrderRef:      d.OrderRef,
			AWB:           d.AWB,
			Category:      d.Category,
			EnteredWeight: d.EnteredWeight,
			CarrierWeight: d.CarrierWeight,
			ExcessCharge:  d.ExcessCharge,
			IsPaid:        d.IsPaid,
			CreatedAt:     d.CreatedAt,
			AutoAcceptAt:  d.AutoAcceptAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDispute handles POST /api/v1/disputes/:id/accept - the merchant
// accepts the carrier's figures and the excess charge is debited.
func (s *Server) AcceptDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAcceptDisputeCommand(disputeID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.acceptDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RaiseDispute handles POST /api/v1/disputes/:id/dispute - the merchant
// contests the audit with a remark and supporting evidence.
func (s *Server) RaiseDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req RaiseDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRaiseDisputeCommand(disputeID, req.Remark, req.Evidence)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.raiseDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
