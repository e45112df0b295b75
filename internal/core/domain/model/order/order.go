package order

import (
	"errors"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoCancellationAfterPickup is the policy error returned when a merchant
	// attempts to cancel an order that the carrier already picked up.
	// There is no refund after pickup, so such cancellations are rejected
	// outright rather than treated as a generic transition failure.
	ErrNoCancellationAfterPickup = errors.New("cancellation is not allowed after carrier pickup")

	// ErrOrderNotDeletable is returned when deleting an order that is still in
	// an active shipment state.
	ErrOrderNotDeletable = errors.New("only new or terminal orders can be deleted")
)

// Order represents a shipment order in the back office. It is the aggregate
// root that manages the order lifecycle from creation through dispatch,
// carrier handling, and final delivery or return.
//
// Order follows these invariants:
//   - Must have a non-empty merchant reference and a valid merchant id
//   - Declared value and payment method are immutable after creation
//   - A courier assignment (and its AWB) is present if and only if the order
//     status is at or beyond ReadyToShip; the AWB is assigned exactly once
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// ref is the merchant-assigned reference id, unique across the platform
	ref string

	// merchantID identifies the owning merchant account
	merchantID kernel.UUID

	// declaredValue is the declared goods value, immutable after creation
	declaredValue kernel.Money

	// payment is the receiver payment method, immutable after creation
	payment PaymentMethod

	// insured marks whether shipment insurance was requested
	insured bool

	// parcel describes the physical package
	parcel Package

	// products are the shipment content lines
	products []ProductLine

	// pickupLocation names the warehouse the carrier collects from
	pickupLocation string

	// destination is the validated shipping address block
	destination Destination

	// status is the current state in the shipment lifecycle
	status Status

	// courier is the dispatch record (nil until dispatched)
	courier *CourierAssignment

	createdAt         time.Time
	statusChangedAt   time.Time
	pickupScheduledAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in status New with no courier assignment.
// This is the single entry point for both manual order entry and marketplace
// connectors; connectors are never allowed to set status, AWB, or charges.
//
// Parameters:
//   - ref: Merchant-assigned reference id (required)
//   - merchantID: Owning merchant account id (must be a valid UUID)
//   - declaredValue: Declared goods value (non-negative)
//   - payment: Prepaid or COD
//   - insured: Whether shipment insurance was requested
//   - parcel: Validated package descriptor
//   - products: Content lines (at least one)
//   - pickupLocation: Pickup warehouse name (required)
//   - destination: Validated shipping address block
//   - now: Creation timestamp
//
// Returns the created order, or a joined validation error naming every
// invalid field.
func NewOrder(
	ref string,
	merchantID kernel.UUID,
	declaredValue kernel.Money,
	payment PaymentMethod,
	insured bool,
	parcel Package,
	products []ProductLine,
	pickupLocation string,
	destination Destination,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:          New,
		insured:         insured,
		createdAt:       now,
		statusChangedAt: now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setRef(ref),
		o.setMerchantID(merchantID),
		o.setDeclaredValue(declaredValue),
		o.setPayment(payment),
		o.setParcel(parcel),
		o.setProducts(products),
		o.setPickupLocation(pickupLocation),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation defaults. The restored order is validated against the aggregate
// invariants, including the status/courier consistency rule.
func RestoreOrder(
	ref string,
	merchantID kernel.UUID,
	declaredValue kernel.Money,
	payment PaymentMethod,
	insured bool,
	parcel Package,
	products []ProductLine,
	pickupLocation string,
	destination Destination,
	status Status,
	courier *CourierAssignment,
	createdAt time.Time,
	statusChangedAt time.Time,
	pickupScheduledAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:            status,
		courier:           courier,
		insured:           insured,
		createdAt:         createdAt,
		statusChangedAt:   statusChangedAt,
		pickupScheduledAt: pickupScheduledAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setRef(ref),
		o.setMerchantID(merchantID),
		o.setDeclaredValue(declaredValue),
		o.setPayment(payment),
		o.setParcel(parcel),
		o.setProducts(products),
		o.setPickupLocation(pickupLocation),
		o.setDestination(destination),
		status.Validate(),
		status.ValidateCanHaveCourier(courier != nil),
	); err != nil {
		return nil, err
	}

	if courier != nil {
		if err := courier.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed and that the
// status/courier invariant holds. Call when reconstructing orders from
// persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return o.status.ValidateCanHaveCourier(o.courier != nil)
}

// IsEqual compares two orders by their merchant reference.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.ref == other.ref
}

// Ref returns the merchant-assigned reference id.
func (o *Order) Ref() string { return o.ref }

// MerchantID returns the owning merchant account id.
func (o *Order) MerchantID() kernel.UUID { return o.merchantID }

// DeclaredValue returns the declared goods value.
func (o *Order) DeclaredValue() kernel.Money { return o.declaredValue }

// Payment returns the receiver payment method.
func (o *Order) Payment() PaymentMethod { return o.payment }

// IsInsured reports whether shipment insurance was requested.
func (o *Order) IsInsured() bool { return o.insured }

// Parcel returns the package descriptor.
func (o *Order) Parcel() Package { return o.parcel }

// Products returns the shipment content lines.
func (o *Order) Products() []ProductLine { return o.products }

// PickupLocation returns the pickup warehouse name.
func (o *Order) PickupLocation() string { return o.pickupLocation }

// Destination returns the shipping address block.
func (o *Order) Destination() Destination { return o.destination }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Courier returns the dispatch record, nil until dispatched.
func (o *Order) Courier() *CourierAssignment { return o.courier }

// AWB returns the air waybill number, empty until dispatched.
func (o *Order) AWB() string {
	if o.courier == nil {
		return ""
	}
	return o.courier.AWB()
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// StatusChangedAt returns the timestamp of the last status transition.
func (o *Order) StatusChangedAt() time.Time { return o.statusChangedAt }

// PickupScheduledAt returns the pickup scheduling timestamp, nil until the
// pickup is scheduled.
func (o *Order) PickupScheduledAt() *time.Time { return o.pickupScheduledAt }

// AssignCourier records the dispatch decision and transitions the order from
// New to ReadyToShip.
//
// Business rules:
//   - The order must be in status New (enforced by the state machine)
//   - The assignment, including the AWB, is written exactly once
//
// The caller (the dispatch use case) is responsible for debiting the wallet
// in the same transaction; this method only mutates the aggregate.
func (o *Order) AssignCourier(assignment CourierAssignment, now time.Time) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	if err := o.transitionTo(ReadyToShip, now); err != nil {
		return err
	}

	o.courier = &assignment
	return nil
}

// MarkManifest moves a dispatched order onto the pickup manifest.
func (o *Order) MarkManifest(now time.Time) error {
	return o.transitionTo(Manifest, now)
}

// SchedulePickup confirms the carrier pickup slot for a manifested order and
// records the scheduling timestamp.
func (o *Order) SchedulePickup(now time.Time) error {
	if err := o.transitionTo(PickupScheduled, now); err != nil {
		return err
	}
	at := now
	o.pickupScheduledAt = &at
	return nil
}

// ConfirmPickup records the carrier pickup confirmation.
func (o *Order) ConfirmPickup(now time.Time) error {
	return o.transitionTo(InTransit, now)
}

// MarkOutForDelivery records the carrier last-mile handoff.
func (o *Order) MarkOutForDelivery(now time.Time) error {
	return o.transitionTo(OutForDelivery, now)
}

// MarkDelivered records a successful delivery confirmation. Terminal.
func (o *Order) MarkDelivered(now time.Time) error {
	return o.transitionTo(Delivered, now)
}

// InitiateRTO transitions the order onto the return-to-origin path. Terminal;
// the already-debited shipping charge is not refunded.
func (o *Order) InitiateRTO(now time.Time) error {
	return o.transitionTo(RTO, now)
}

// Cancel performs a merchant cancellation.
//
// Business rules:
//   - Allowed without penalty from any pre-pickup state (New through
//     PickupScheduled)
//   - Rejected with ErrNoCancellationAfterPickup once the carrier picked the
//     shipment up (InTransit, OutForDelivery); there is no refund after pickup
//   - Rejected as an invalid transition from terminal states
func (o *Order) Cancel(now time.Time) error {
	switch o.status {
	case InTransit, OutForDelivery:
		return ErrNoCancellationAfterPickup
	default:
		return o.transitionTo(Cancelled, now)
	}
}

// Clone creates a fresh order with the same shipment descriptor under a new
// merchant reference. The clone starts in status New with no courier.
func (o *Order) Clone(newRef string, now time.Time) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return NewOrder(
		newRef,
		o.merchantID,
		o.declaredValue,
		o.payment,
		o.insured,
		o.parcel,
		o.products,
		o.pickupLocation,
		o.destination,
		now,
	)
}

// IsDeletable reports whether the order may be removed from the store.
// Only undispatched (New) and terminal orders can be deleted.
func (o *Order) IsDeletable() bool {
	return o.status == New || o.status.IsTerminal()
}

func (o *Order) transitionTo(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusChangedAt = now
	return nil
}

func (o *Order) setRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	o.ref = ref
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.ValidateNonNegative("declared value"); err != nil {
		return err
	}
	o.declaredValue = declaredValue
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setParcel(parcel Package) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	o.parcel = parcel
	return nil
}

func (o *Order) setProducts(products []ProductLine) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	o.products = products
	return nil
}

func (o *Order) setPickupLocation(pickupLocation string) error {
	if strings.TrimSpace(pickupLocation) == "" {
		return errs.NewValueIsRequiredError("pickup location")
	}
	o.pickupLocation = pickupLocation
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
