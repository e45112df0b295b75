package http

import (
	"net/http"
	"time"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	merchant, err := merchantID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payment, err := order.PaymentMethodFromString(req.Payment)
	if err != nil {
		return fail(ctx, err)
	}

	parcel, err := order.NewPackage(req.WeightKg, req.LengthCm, req.WidthCm, req.HeightCm)
	if err != nil {
		return fail(ctx, err)
	}

	destination, err := order.NewDestination(
		req.Destination.Name,
		req.Destination.Phone,
		req.Destination.Address,
		req.Destination.PostalCode,
		req.Destination.Country,
	)
	if err != nil {
		return fail(ctx, err)
	}

	products := make([]order.ProductLine, 0, len(req.Products))
	for _, p := range req.Products {
		line, lineErr := order.NewProductLine(p.Name, p.SKU, p.Quantity, kernel.NewMoney(p.UnitPrice))
		if lineErr != nil {
			return fail(ctx, lineErr)
		}
		products = append(products, line)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Ref,
		merchant,
		kernel.NewMoney(req.DeclaredValue),
		payment,
		req.Insured,
		parcel,
		products,
		req.PickupLocation,
		destination,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListOrders handles GET /api/v1/orders - lists the caller's orders.
// Supports ?status=, ?from=, ?to= and ?search= filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	merchant, err := merchantID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var filter queries.OrderFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return fail(ctx, statusErr)
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("from"); raw != "" {
		from, parseErr := parseTimeParam(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid from date")
		}
		filter.From = &from
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		to, parseErr := parseTimeParam(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid to date")
		}
		filter.To = &to
	}
	filter.Search = ctx.QueryParam("search")

	query, err := queries.NewListOrdersQuery(merchant, filter)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			Ref:             o.Ref,
			Status:          o.Status,
			Payment:         o.Payment,
			DeclaredValue:   o.DeclaredValue,
			DestinationName: o.DestinationName,
			CourierName:     o.CourierName,
			AWB:             o.AWB,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:ref - full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("ref"))
	if err != nil {
		return fail(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	products := make([]ProductLineDetail, len(detail.Products))
	for i, p := range detail.Products {
		products[i] = ProductLineDetail{
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		}
	}

	var courier *CourierDetail
	if detail.Courier != nil {
		courier = &CourierDetail{
			CourierID:   detail.Courier.CourierID,
			CourierName: detail.Courier.CourierName,
			Mode:        detail.Courier.Mode,
			AWB:         detail.Courier.AWB,
			Shipping:    detail.Courier.Shipping,
			Insurance:   detail.Courier.Insurance,
			COD:         detail.Courier.COD,
			Total:       detail.Courier.Total,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		Ref:            detail.Ref,
		MerchantID:     detail.MerchantID,
		Status:         detail.Status,
		Payment:        detail.Payment,
		Insured:        detail.Insured,
		DeclaredValue:  detail.DeclaredValue,
		WeightKg:       detail.WeightKg,
		LengthCm:       detail.LengthCm,
		WidthCm:        detail.WidthCm,
		HeightCm:       detail.HeightCm,
		PickupLocation: detail.PickupLocation,
		Destination: DestinationRequest{
			Name:       detail.DestName,
			Phone:      detail.DestPhone,
			Address:    detail.DestAddress,
			PostalCode: detail.DestPostalCode,
			Country:    detail.DestCountry,
		},
		Products:          products,
		Courier:           courier,
		CreatedAt:         detail.CreatedAt,
		StatusChangedAt:   detail.StatusChangedAt,
		PickupScheduledAt: detail.PickupScheduledAt,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:ref - removes a draft order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("ref"))
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:ref/dispatch - assigns a
// courier, generates the AWB and debits the shipping charge in one
// transaction.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	merchant, err := merchantID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req DispatchOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDispatchOrderCommand(ctx.Param("ref"), merchant, req.CourierID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SchedulePickup handles POST /api/v1/orders/pickups - schedules pickup for
// a batch of dispatched orders. Each order is applied independently; the
// response reports the outcome per order.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	var req SchedulePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSchedulePickupCommand(req.OrderRefs)
	if err != nil {
		return fail(ctx, err)
	}

	results, err := s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]PickupItemResult, 0, len(results))
	for _, result := range results {
		item := PickupItemResult{OrderRef: result.OrderRef, Scheduled: result.Err == nil}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		items = append(items, item)
	}

	return ctx.JSON(http.StatusOK, items)
}

// RecordTrackingEvent handles POST /api/v1/orders/:ref/tracking-events -
// advances the order along the carrier milestones.
func (s *Server) RecordTrackingEvent(ctx echo.Context) error {
	var req TrackingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	event, err := commands.TrackingEventFromString(req.Event)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRecordTrackingEventCommand(ctx.Param("ref"), event)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.recordTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:ref/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("ref"))
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CloneOrder handles POST /api/v1/orders/:ref/clone - copies an order into
// a fresh draft under a new reference.
func (s *Server) CloneOrder(ctx echo.Context) error {
	var req CloneOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCloneOrderCommand(ctx.Param("ref"), req.NewRef)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.cloneOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// parseTimeParam accepts RFC 3339 timestamps and bare dates.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
