// Package ratecard provides the static courier rate table. Rates are flat
// per-shipment amounts negotiated with each carrier; until carrier rate
// APIs are integrated the table is compiled in.
package ratecard

import (
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/services"
)

// StaticRateCard implements ports.RateCard from a compiled-in table.
type StaticRateCard struct {
	rates map[string]services.CourierRate
	ids   []string
}

// NewStaticRateCard creates the rate card with the full carrier table.
func NewStaticRateCard() *StaticRateCard {
	card := &StaticRateCard{rates: make(map[string]services.CourierRate)}

	for _, rate := range []services.CourierRate{
		{ID: "c0e", Name: "SHIPDESK PREMIUM - EXPRESS", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(62), AWBPrefix: "SDE"},
		{ID: "c0v", Name: "SHIPDESK PREMIUM - VALUE", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(75), AWBPrefix: "SDV"},
		{ID: "c3", Name: "DELHIVERY EXPRESS AIR", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(85), AWBPrefix: "1"},
		{ID: "c4", Name: "DELHIVERY SURFACE", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(38), AWBPrefix: "3"},
		{ID: "c5", Name: "DTDC AIR", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(55), AWBPrefix: "7X"},
		{ID: "c6", Name: "DTDC SURFACE", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(42), AWBPrefix: "7D"},
		{ID: "c1", Name: "BLUE DART APEX AIR", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(125), AWBPrefix: "9"},
		{ID: "c2", Name: "BLUE DART SURFACE", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(58), AWBPrefix: "1"},
		{ID: "c12", Name: "SHREE MARUTI AIR", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(80), AWBPrefix: "SMC1"},
		{ID: "c13", Name: "SHREE MARUTI SURFACE", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(45), AWBPrefix: "SMC2"},
		{ID: "c10", Name: "PROFESSIONAL COURIERS AIR", Mode: order.ModeAir, Rate: kernel.MoneyFromFloat(75), AWBPrefix: "DEL1"},
		{ID: "c11", Name: "PROFESSIONAL COURIERS SURFACE", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(48), AWBPrefix: "DEL2"},
		{ID: "c_amz_sf", Name: "AMAZON FAST-TRACK", Mode: order.ModeSurface, Rate: kernel.MoneyFromFloat(40), AWBPrefix: "23"},
	} {
		card.rates[rate.ID] = rate
		card.ids = append(card.ids, rate.ID)
	}

	return card
}

// Get returns the rate for the given courier id.
// Returns services.ErrCourierNotFound for unknown ids.
func (c *StaticRateCard) Get(courierID string) (services.CourierRate, error) {
	rate, ok := c.rates[courierID]
	if !ok {
		return services.CourierRate{}, services.ErrCourierNotFound
	}
	return rate, nil
}

// All returns every rate in table order.
func (c *StaticRateCard) All() []services.CourierRate {
	rates := make([]services.CourierRate, 0, len(c.ids))
	for _, id := range c.ids {
		rates = append(rates, c.rates[id])
	}
	return rates
}
