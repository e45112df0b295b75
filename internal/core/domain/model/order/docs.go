// Package order provides domain entities and business logic for shipment order
// management in the logistics back office. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, shipment descriptor,
//     courier assignment, and lifecycle
//   - Status: A state machine that enforces valid shipment status transitions
//   - Destination, Package, ProductLine: Validated value objects of the shipment descriptor
//   - CourierAssignment, ChargeBreakdown: Immutable record of the dispatch decision
//
// Key business rules:
//   - Orders must have a merchant reference, a valid destination, and a positive weight
//   - Shipment status follows the delivery workflow:
//     New -> Ready to Ship -> Manifest -> Pickup Scheduled -> In Transit ->
//     Out For Delivery -> Delivered, with RTO and Cancelled as failure exits
//   - The AWB is assigned exactly once, at dispatch, and is immutable afterwards
//   - Declared value and payment method are immutable after creation
//   - Cancellation is only allowed before carrier pickup; there is no refund after pickup
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
