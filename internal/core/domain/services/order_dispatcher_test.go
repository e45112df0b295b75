package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/services"
)

func newDispatchableOrder(t *testing.T, method order.PaymentMethod, insured bool) *order.Order {
	t.Helper()
	destination, err := order.NewDestination(
		"Rahul Kumar", "9876543210", "12 MG Road, Bengaluru", "560001", "India")
	require.NoError(t, err)
	parcel, err := order.NewPackage(decimal.NewFromFloat(0.5), 10, 10, 10)
	require.NoError(t, err)
	line, err := order.NewProductLine("Commercial Goods", "CG-01", 1, kernel.MoneyFromFloat(1000))
	require.NoError(t, err)

	o, err := order.NewOrder(
		"ORD-1", kernel.NewUUID(), kernel.MoneyFromFloat(1000), method, insured,
		parcel, []order.ProductLine{line}, "MAIN HUB", destination, time.Now())
	require.NoError(t, err)
	return o
}

func delhiveryAir() services.CourierRate {
	return services.CourierRate{
		ID:        "c3",
		Name:      "DELHIVERY EXPRESS AIR",
		Mode:      order.ModeAir,
		Rate:      kernel.MoneyFromFloat(85),
		AWBPrefix: "1",
	}
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("assigns the courier and returns the debit amount", func(t *testing.T) {
		o := newDispatchableOrder(t, order.PaymentCOD, false)

		charges, err := dispatcher.Dispatch(o, delhiveryAir(), "1123456789", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "135.00", charges.Total().String())
		assert.Equal(t, order.ReadyToShip, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, "DELHIVERY EXPRESS AIR", o.Courier().CourierName())
		assert.Equal(t, order.ModeAir, o.Courier().Mode())
		assert.Equal(t, "1123456789", o.AWB())
		assert.Equal(t, "135.00", o.Courier().Charges().Total().String())
	})

	t.Run("charges the insurance premium on insured orders", func(t *testing.T) {
		o := newDispatchableOrder(t, order.PaymentPrepaid, true)

		charges, err := dispatcher.Dispatch(o, delhiveryAir(), "1123456790", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "20.00", charges.Insurance().String())
		assert.Equal(t, "105.00", charges.Total().String())
	})

	t.Run("fails on an already dispatched order", func(t *testing.T) {
		o := newDispatchableOrder(t, order.PaymentPrepaid, false)
		_, err := dispatcher.Dispatch(o, delhiveryAir(), "1123456791", time.Now())
		require.NoError(t, err)

		_, err = dispatcher.Dispatch(o, delhiveryAir(), "1123456792", time.Now())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, "1123456791", o.AWB())
	})

	t.Run("fails on an unconstructed order", func(t *testing.T) {
		var o order.Order
		_, err := dispatcher.Dispatch(&o, delhiveryAir(), "1123456793", time.Now())
		require.Error(t, err)
	})

	t.Run("fails on a rate entry without a mode", func(t *testing.T) {
		o := newDispatchableOrder(t, order.PaymentPrepaid, false)
		rate := delhiveryAir()
		rate.Mode = order.ModeUnknown

		_, err := dispatcher.Dispatch(o, rate, "1123456794", time.Now())

		require.Error(t, err)
		assert.Equal(t, order.New, o.Status())
	})
}
