package order_test

import (
	"testing"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDestination(t *testing.T) {
	t.Run("valid destination", func(t *testing.T) {
		d, err := order.NewDestination("Sneha Gupta", "99-8877-6655", "4 Park Street, Kolkata", "700016", "India")
		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Sneha Gupta", d.Name())
	})

	t.Run("phone needs at least ten digits", func(t *testing.T) {
		_, err := order.NewDestination("Sneha Gupta", "12345", "4 Park Street", "700016", "India")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "receiver phone")
	})

	t.Run("all address fields are mandatory", func(t *testing.T) {
		_, err := order.NewDestination("", "9988776655", "", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "receiver name")
		assert.Contains(t, err.Error(), "receiver address")
		assert.Contains(t, err.Error(), "postal code")
		assert.Contains(t, err.Error(), "country")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d order.Destination
		require.ErrorIs(t, d.Validate(), errs.ErrValueIsRequired)
	})
}

func TestNewPackage(t *testing.T) {
	t.Run("valid parcel", func(t *testing.T) {
		p, err := order.NewPackage(decimal.NewFromFloat(0.5), 10, 20, 15)
		require.NoError(t, err)
		assert.Equal(t, "10x20x15", p.Dimensions())
		assert.True(t, p.WeightKg().Equal(decimal.NewFromFloat(0.5)))
	})

	t.Run("weight must be positive", func(t *testing.T) {
		_, err := order.NewPackage(decimal.Zero, 10, 10, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "package weight")
	})

	t.Run("dimensions must be positive", func(t *testing.T) {
		_, err := order.NewPackage(decimal.NewFromFloat(1), 10, 0, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "package dimensions")
	})
}

func TestNewProductLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		line, err := order.NewProductLine("Commercial Goods", "CG-01", 2, kernel.MoneyFromFloat(500))
		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		_, err := order.NewProductLine("Commercial Goods", "CG-01", 0, kernel.MoneyFromFloat(500))
		require.Error(t, err)
	})

	t.Run("name is mandatory", func(t *testing.T) {
		_, err := order.NewProductLine(" ", "CG-01", 1, kernel.MoneyFromFloat(500))
		require.Error(t, err)
	})
}

func TestNewChargeBreakdown(t *testing.T) {
	t.Run("total is the sum of the components", func(t *testing.T) {
		c, err := order.NewChargeBreakdown(
			kernel.MoneyFromFloat(85), kernel.MoneyFromFloat(20), kernel.MoneyFromFloat(50))
		require.NoError(t, err)
		assert.Equal(t, "155.00", c.Total().String())
	})

	t.Run("components must be non-negative", func(t *testing.T) {
		_, err := order.NewChargeBreakdown(
			kernel.MoneyFromFloat(-1), kernel.ZeroMoney(), kernel.ZeroMoney())
		require.Error(t, err)
	})
}

func TestPaymentMethodAndMode(t *testing.T) {
	t.Run("payment method parsing", func(t *testing.T) {
		m, err := order.PaymentMethodFromString("COD")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentCOD, m)
		_, err = order.PaymentMethodFromString("Barter")
		require.Error(t, err)
	})

	t.Run("transport mode parsing", func(t *testing.T) {
		m, err := order.TransportModeFromString("Surface")
		require.NoError(t, err)
		assert.Equal(t, order.ModeSurface, m)
		_, err = order.TransportModeFromString("Rail")
		require.Error(t, err)
	})
}
