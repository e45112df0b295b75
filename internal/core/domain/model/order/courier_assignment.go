package order

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

// TransportMode is the line-haul mode of an assigned courier service.
type TransportMode int

const (
	// ModeUnknown represents an invalid or undefined transport mode.
	ModeUnknown TransportMode = iota

	// ModeAir is express air freight.
	ModeAir

	// ModeSurface is ground freight.
	ModeSurface
)

// TransportModeFromString parses a transport mode from its display string.
func TransportModeFromString(s string) (TransportMode, error) {
	switch s {
	case "Air":
		return ModeAir, nil
	case "Surface":
		return ModeSurface, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("transport mode",
			fmt.Errorf("%q is not a valid transport mode", s))
	}
}

// Validate checks the transport mode is one of the defined values.
func (m TransportMode) Validate() error {
	if m != ModeAir && m != ModeSurface {
		return errs.NewValueIsInvalidErrorWithCause("transport mode",
			fmt.Errorf("%d is not a valid transport mode", int(m)))
	}
	return nil
}

// String implements fmt.Stringer.
func (m TransportMode) String() string {
	switch m {
	case ModeAir:
		return "Air"
	case ModeSurface:
		return "Surface"
	default:
		return "Unknown"
	}
}

// ErrChargeBreakdownIsNotConstructed is returned when validating a zero-value ChargeBreakdown.
var ErrChargeBreakdownIsNotConstructed = errs.NewValueIsRequiredError(
	"charge breakdown must be created via NewChargeBreakdown constructor")

// ChargeBreakdown itemizes the amount debited from the merchant wallet at
// dispatch: base shipping charge, insurance premium, and COD surcharge.
// Total is always the sum of the three components.
type ChargeBreakdown struct {
	shipping  kernel.Money
	insurance kernel.Money
	cod       kernel.Money
	total     kernel.Money

	guard guard.ConstructorGuard
}

// NewChargeBreakdown creates a charge breakdown from its components.
// Each component must be non-negative; the total is derived, never supplied.
func NewChargeBreakdown(shipping, insurance, cod kernel.Money) (ChargeBreakdown, error) {
	if err := errors.Join(
		shipping.ValidateNonNegative("shipping charge"),
		insurance.ValidateNonNegative("insurance charge"),
		cod.ValidateNonNegative("cod charge"),
	); err != nil {
		return ChargeBreakdown{}, err
	}

	return ChargeBreakdown{
		shipping:  shipping,
		insurance: insurance,
		cod:       cod,
		total:     shipping.Add(insurance).Add(cod),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the ChargeBreakdown was properly constructed.
func (c ChargeBreakdown) Validate() error {
	return c.guard.Validate(ErrChargeBreakdownIsNotConstructed)
}

// Shipping returns the base courier rate.
func (c ChargeBreakdown) Shipping() kernel.Money { return c.shipping }

// Insurance returns the insurance premium, zero when uninsured.
func (c ChargeBreakdown) Insurance() kernel.Money { return c.insurance }

// COD returns the cash-on-delivery surcharge, zero for prepaid orders.
func (c ChargeBreakdown) COD() kernel.Money { return c.cod }

// Total returns the sum of all components; this is the amount debited.
func (c ChargeBreakdown) Total() kernel.Money { return c.total }

// ErrCourierAssignmentIsNotConstructed is returned when validating a
// zero-value CourierAssignment.
var ErrCourierAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"courier assignment must be created via NewCourierAssignment constructor")

// CourierAssignment is the immutable record of the dispatch decision:
// which courier service carries the shipment, under which AWB, and what
// it cost. It is written exactly once, at the New -> ReadyToShip transition.
type CourierAssignment struct {
	courierID   string
	courierName string
	mode        TransportMode
	awb         string
	charges     ChargeBreakdown

	guard guard.ConstructorGuard
}

// NewCourierAssignment creates a validated courier assignment.
func NewCourierAssignment(
	courierID string,
	courierName string,
	mode TransportMode,
	awb string,
	charges ChargeBreakdown,
) (CourierAssignment, error) {
	a := CourierAssignment{guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(courierID) == "" {
		return CourierAssignment{}, errs.NewValueIsRequiredError("courier id")
	}
	if strings.TrimSpace(courierName) == "" {
		return CourierAssignment{}, errs.NewValueIsRequiredError("courier name")
	}
	if err := mode.Validate(); err != nil {
		return CourierAssignment{}, err
	}
	if strings.TrimSpace(awb) == "" {
		return CourierAssignment{}, errs.NewValueIsRequiredError("awb")
	}
	if err := charges.Validate(); err != nil {
		return CourierAssignment{}, err
	}

	a.courierID = courierID
	a.courierName = courierName
	a.mode = mode
	a.awb = awb
	a.charges = charges
	return a, nil
}

// Validate checks the CourierAssignment was properly constructed.
func (a CourierAssignment) Validate() error {
	return a.guard.Validate(ErrCourierAssignmentIsNotConstructed)
}

// CourierID returns the rate-card identifier of the courier service.
func (a CourierAssignment) CourierID() string { return a.courierID }

// CourierName returns the display name of the courier service.
func (a CourierAssignment) CourierName() string { return a.courierName }

// Mode returns the transport mode of the courier service.
func (a CourierAssignment) Mode() TransportMode { return a.mode }

// AWB returns the air waybill number. Immutable after assignment.
func (a CourierAssignment) AWB() string { return a.awb }

// Charges returns the charge breakdown debited at dispatch.
func (a CourierAssignment) Charges() ChargeBreakdown { return a.charges }
