package ratecard_test

import (
	"testing"

	"shipdesk/internal/adapters/out/ratecard"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRateCard_Get(t *testing.T) {
	card := ratecard.NewStaticRateCard()

	rate, err := card.Get("c3")
	require.NoError(t, err)

	assert.Equal(t, "DELHIVERY EXPRESS AIR", rate.Name)
	assert.Equal(t, order.ModeAir, rate.Mode)
	assert.Equal(t, "85.00", rate.Rate.String())
	assert.Equal(t, "1", rate.AWBPrefix)
}

func TestStaticRateCard_GetUnknownCourier(t *testing.T) {
	card := ratecard.NewStaticRateCard()

	_, err := card.Get("c99")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrCourierNotFound)
}

func TestStaticRateCard_All(t *testing.T) {
	card := ratecard.NewStaticRateCard()

	rates := card.All()
	require.Len(t, rates, 13)

	// Table order is stable.
	assert.Equal(t, "c0e", rates[0].ID)
	assert.Equal(t, "c_amz_sf", rates[len(rates)-1].ID)

	// Both premium lanes fly air.
	assert.Equal(t, order.ModeAir, rates[0].Mode)
	assert.Equal(t, order.ModeAir, rates[1].Mode)

	for _, rate := range rates {
		assert.NotEmpty(t, rate.Name, "rate %s must carry a name", rate.ID)
		assert.NotEmpty(t, rate.AWBPrefix, "rate %s must carry an AWB prefix", rate.ID)
		assert.True(t, rate.Rate.IsPositive(), "rate %s must be positive", rate.ID)
		assert.NoError(t, rate.Mode.Validate(), "rate %s must carry a valid mode", rate.ID)
	}
}
