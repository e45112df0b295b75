package services

import (
	"time"

	"shipdesk/internal/core/domain/model/order"
)

// OrderDispatcher is a domain service that turns a rate card entry and a
// fresh AWB into a courier assignment on an order.
//
// Business rules:
//   - Only orders awaiting dispatch accept an assignment; the order aggregate
//     enforces the status transition
//   - The charges are computed from the rate, the insurance flag and the
//     payment method, never supplied by the caller
//   - The returned breakdown is the amount the application layer must debit
//     from the merchant wallet in the same transactional boundary
type OrderDispatcher struct {
	calculator ChargeCalculator
}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{calculator: NewChargeCalculator()}
}

// Dispatch computes the charges for the order on the given rate card entry
// and records the courier assignment under the given AWB. The order moves to
// its dispatched status; the caller performs the matching wallet debit.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	rate CourierRate,
	awb string,
	now time.Time,
) (order.ChargeBreakdown, error) {
	if err := o.Validate(); err != nil {
		return order.ChargeBreakdown{}, err
	}

	charges, err := d.calculator.Calculate(rate.Rate, o.DeclaredValue(), o.IsInsured(), o.Payment())
	if err != nil {
		return order.ChargeBreakdown{}, err
	}

	assignment, err := order.NewCourierAssignment(rate.ID, rate.Name, rate.Mode, awb, charges)
	if err != nil {
		return order.ChargeBreakdown{}, err
	}

	if err := o.AssignCourier(assignment, now); err != nil {
		return order.ChargeBreakdown{}, err
	}

	return charges, nil
}
