// Package ndr models non-delivery incidents raised by the carrier against
// dispatched orders. An incident accumulates failed delivery attempts for one
// order and is closed by exactly one resolution action. The incident never
// mutates the order directly; returning the shipment to origin is requested
// through the order aggregate by the application layer.
package ndr
