package http

import (
	"net/http"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"

	"github.com/labstack/echo/v4"
)

// ReportFailedAttempt handles POST /api/v1/orders/:ref/ndr - records a
// failed delivery attempt, opening an incident on the first one.
func (s *Server) ReportFailedAttempt(ctx echo.Context) error {
	var req ReportNDRRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reason, err := ndr.FailureReasonFromString(req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewReportFailedAttemptCommand(ctx.Param("ref"), reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.reportFailedAttemptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListOpenIncidents handles GET /api/v1/ndr - the operator NDR desk.
func (s *Server) ListOpenIncidents(ctx echo.Context) error {
	incidents, err := s.listOpenIncidentsHandler.Handle(
		ctx.Request().Context(), queries.NewListOpenIncidentsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]NDRIncident, len(incidents))
	for i, incident := range incidents {
		response[i] = NDRIncident{
			ID:            incident.ID,
			OrderRef:      incident.OrderRef,
			Reason:        incident.Reason,
			Attempts:      incident.Attempts,
			DestName:      incident.DestName,
			DestPhone:     incident.DestPhone,
			CreatedAt:     incident.CreatedAt,
			LastAttemptAt: incident.LastAttemptAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResolveIncident handles POST /api/v1/ndr/:id/resolve - closes an open
// incident with a reattempt or return-to-origin instruction.
func (s *Server) ResolveIncident(ctx echo.Context) error {
	incidentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req ResolveIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := ndr.ResolutionActionFromString(req.Action)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewResolveIncidentCommand(incidentID, action)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.resolveIncidentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
