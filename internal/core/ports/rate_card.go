package ports

import (
	"shipdesk/internal/core/domain/services"
)

// RateCard defines the lookup contract for courier rates. Implementations
// are static tables; rates are never fetched from the carrier at dispatch
// time.
type RateCard interface {
	// Get retrieves the rate entry for a courier id.
	// Returns services.ErrCourierNotFound for unknown ids.
	Get(courierID string) (services.CourierRate, error)

	// All returns every rate entry, for listing available courier services.
	All() []services.CourierRate
}
