// Package http is the inbound HTTP adapter: hand-written echo handlers
// exposing the settlement engine under /api/v1. Handlers translate wire
// requests to commands and queries and map domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/model/wallet"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// merchantHeader carries the caller's merchant id. Identity is assumed, not
// verified; authentication lives outside this service.
const merchantHeader = "X-Merchant-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	dispatchOrderHandler       commands.DispatchOrderCommandHandler
	schedulePickupHandler      commands.SchedulePickupCommandHandler
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	cloneOrderHandler          commands.CloneOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	reportFailedAttemptHandler commands.ReportFailedAttemptCommandHandler
	resolveIncidentHandler     commands.ResolveIncidentCommandHandler
	reportWeightAuditHandler   commands.ReportWeightAuditCommandHandler
	acceptDisputeHandler       commands.AcceptDisputeCommandHandler
	raiseDisputeHandler        commands.RaiseDisputeCommandHandler
	creditWalletHandler        commands.CreditWalletCommandHandler
	registerMerchantHandler    commands.RegisterMerchantCommandHandler

	// Query handlers
	listOrdersHandler         queries.ListOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getWalletBalanceHandler   queries.GetWalletBalanceQueryHandler
	getWalletStatementHandler queries.GetWalletStatementQueryHandler
	listOpenIncidentsHandler  queries.ListOpenIncidentsQueryHandler
	listDisputesHandler       queries.ListDisputesQueryHandler
}

// ServerHandlers bundles the use case handlers the server depends on.
type ServerHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	DispatchOrder       commands.DispatchOrderCommandHandler
	SchedulePickup      commands.SchedulePickupCommandHandler
	RecordTrackingEvent commands.RecordTrackingEventCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	CloneOrder          commands.CloneOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	ReportFailedAttempt commands.ReportFailedAttemptCommandHandler
	ResolveIncident     commands.ResolveIncidentCommandHandler
	ReportWeightAudit   commands.ReportWeightAuditCommandHandler
	AcceptDispute       commands.AcceptDisputeCommandHandler
	RaiseDispute        commands.RaiseDisputeCommandHandler
	CreditWallet        commands.CreditWalletCommandHandler
	RegisterMerchant    commands.RegisterMerchantCommandHandler

	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetWalletBalance   queries.GetWalletBalanceQueryHandler
	GetWalletStatement queries.GetWalletStatementQueryHandler
	ListOpenIncidents  queries.ListOpenIncidentsQueryHandler
	ListDisputes       queries.ListDisputesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:         handlers.CreateOrder,
		dispatchOrderHandler:       handlers.DispatchOrder,
		schedulePickupHandler:      handlers.SchedulePickup,
		recordTrackingEventHandler: handlers.RecordTrackingEvent,
		cancelOrderHandler:         handlers.CancelOrder,
		cloneOrderHandler:          handlers.CloneOrder,
		deleteOrderHandler:         handlers.DeleteOrder,
		reportFailedAttemptHandler: handlers.ReportFailedAttempt,
		resolveIncidentHandler:     handlers.ResolveIncident,
		reportWeightAuditHandler:   handlers.ReportWeightAudit,
		acceptDisputeHandler:       handlers.AcceptDispute,
		raiseDisputeHandler:        handlers.RaiseDispute,
		creditWalletHandler:        handlers.CreditWallet,
		registerMerchantHandler:    handlers.RegisterMerchant,
		listOrdersHandler:          handlers.ListOrders,
		getOrderHandler:            handlers.GetOrder,
		getWalletBalanceHandler:    handlers.GetWalletBalance,
		getWalletStatementHandler:  handlers.GetWalletStatement,
		listOpenIncidentsHandler:   handlers.ListOpenIncidents,
		listDisputesHandler:        handlers.ListDisputes,
	}
}

// RegisterRoutes mounts every handler under /api/v1 on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:ref", s.GetOrder)
	api.DELETE("/orders/:ref", s.DeleteOrder)
	api.POST("/orders/:ref/dispatch", s.DispatchOrder)
	api.POST("/orders/pickups", s.SchedulePickup)
	api.POST("/orders/:ref/tracking-events", s.RecordTrackingEvent)
	api.POST("/orders/:ref/cancel", s.CancelOrder)
	api.POST("/orders/:ref/clone", s.CloneOrder)
	api.POST("/orders/:ref/ndr", s.ReportFailedAttempt)
	api.POST("/orders/:ref/weight-audit", s.ReportWeightAudit)

	api.GET("/ndr", s.ListOpenIncidents)
	api.POST("/ndr/:id/resolve", s.ResolveIncident)

	api.GET("/disputes", s.ListDisputes)
	api.POST("/disputes/:id/accept", s.AcceptDispute)
	api.POST("/disputes/:id/dispute", s.RaiseDispute)

	api.POST("/merchants", s.RegisterMerchant)
	api.POST("/wallet/:id/credit", s.CreditWallet)
	api.GET("/wallet/:id/balance", s.GetWalletBalance)
	api.GET("/wallet/:id/transactions", s.GetWalletStatement)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// merchantID extracts the caller identity from the X-Merchant-ID header.
func merchantID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(merchantHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(merchantHeader)
	}
	return kernel.UUIDFromString(raw)
}

// fail maps a use case error to the wire: validation problems are 400, missing
// objects 404, state conflicts 409, an uncovered debit 402, the rest 500.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, wallet.ErrInsufficientFunds):
		code = http.StatusPaymentRequired
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNoCancellationAfterPickup),
		errors.Is(err, order.ErrOrderNotDeletable),
		errors.Is(err, ndr.ErrIncidentAlreadyClosed),
		errors.Is(err, dispute.ErrDisputeAlreadyResolved),
		errors.Is(err, commands.ErrOrderAlreadyExists),
		errors.Is(err, commands.ErrDisputeAlreadyOpen),
		errors.Is(err, commands.ErrOrderNotDispatched),
		errors.Is(err, commands.ErrOrderNotInDelivery),
		errors.Is(err, commands.ErrMerchantAlreadyRegistered):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrCourierNotFound):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
