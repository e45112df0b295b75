// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the settlement engine. It implements the
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ChargeCalculator: computes the payable amount for a shipment from the
//     courier rate, the insurance flag and the payment method
//   - AWBGenerator: produces candidate air waybill numbers from a courier's
//     AWB prefix
//   - OrderDispatcher: assembles the courier assignment for an order out of a
//     rate card entry, a fresh AWB and the computed charges
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
