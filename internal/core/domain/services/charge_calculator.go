package services

import (
	"github.com/shopspring/decimal"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
)

// codSurcharge is the flat fee added to cash-on-delivery shipments.
var codSurcharge = kernel.MoneyFromFloat(50)

// insuranceRate is the premium charged on the declared value of insured
// shipments.
var insuranceRate = decimal.NewFromFloat(0.02)

// ChargeCalculator computes the payable amount for a shipment.
//
// Business rules:
//   - The shipping charge is the courier's per-shipment rate
//   - Insured shipments pay a premium of 2% of the declared value
//   - COD shipments pay a flat surcharge
//   - The total is the sum of the three components
type ChargeCalculator struct{}

// NewChargeCalculator creates a new ChargeCalculator instance.
func NewChargeCalculator() ChargeCalculator {
	return ChargeCalculator{}
}

// Calculate builds the charge breakdown for one shipment.
func (c ChargeCalculator) Calculate(
	rate kernel.Money,
	declaredValue kernel.Money,
	insured bool,
	payment order.PaymentMethod,
) (order.ChargeBreakdown, error) {
	if err := rate.ValidateNonNegative("rate"); err != nil {
		return order.ChargeBreakdown{}, err
	}
	if err := declaredValue.ValidateNonNegative("declaredValue"); err != nil {
		return order.ChargeBreakdown{}, err
	}
	if err := payment.Validate(); err != nil {
		return order.ChargeBreakdown{}, err
	}

	insurance := kernel.ZeroMoney()
	if insured {
		insurance = declaredValue.Mul(insuranceRate)
	}

	cod := kernel.ZeroMoney()
	if payment == order.PaymentCOD {
		cod = codSurcharge
	}

	return order.NewChargeBreakdown(rate, insurance, cod)
}
