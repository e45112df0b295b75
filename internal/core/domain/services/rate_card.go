package services

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when the requested courier id has no entry in
// the rate card.
var ErrCourierNotFound = errors.New("courier not found")

// CourierRate is one rate card entry: everything the dispatcher needs to know
// about a courier service. Pure data, looked up by courier id.
type CourierRate struct {
	ID        string
	Name      string
	Mode      order.TransportMode
	Rate      kernel.Money
	AWBPrefix string
}
