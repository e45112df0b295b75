package kernel_test

import (
	"testing"

	"shipdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConstruction(t *testing.T) {
	t.Run("should create money from float", func(t *testing.T) {
		m := kernel.MoneyFromFloat(135)
		assert.Equal(t, "135.00", m.String())
	})

	t.Run("should create money from string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("4865.50")
		require.NoError(t, err)
		assert.Equal(t, "4865.50", m.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("not a number")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "money amount")
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	rate := kernel.MoneyFromFloat(85)
	surcharge := kernel.MoneyFromFloat(50)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "135.00", rate.Add(surcharge).String())
	})

	t.Run("sub can go negative", func(t *testing.T) {
		diff := surcharge.Sub(rate)
		assert.True(t, diff.IsNegative())
		assert.Equal(t, "-35.00", diff.String())
	})

	t.Run("neg flips sign", func(t *testing.T) {
		assert.Equal(t, "-85.00", rate.Neg().String())
	})

	t.Run("mul applies a decimal factor", func(t *testing.T) {
		declared := kernel.MoneyFromFloat(1000)
		premium := declared.Mul(decimal.NewFromFloat(0.02))
		assert.Equal(t, "20.00", premium.String())
	})

	t.Run("comparison", func(t *testing.T) {
		assert.True(t, surcharge.LessThan(rate))
		assert.False(t, rate.LessThan(surcharge))
		assert.True(t, rate.IsEqual(kernel.MoneyFromFloat(85.00)))
	})
}

func TestMoneyValidateNonNegative(t *testing.T) {
	t.Run("non-negative amount passes", func(t *testing.T) {
		require.NoError(t, kernel.MoneyFromFloat(0).ValidateNonNegative("rate"))
		require.NoError(t, kernel.MoneyFromFloat(10).ValidateNonNegative("rate"))
	})

	t.Run("negative amount fails with param name", func(t *testing.T) {
		err := kernel.MoneyFromFloat(-1).ValidateNonNegative("declared value")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declared value")
		assert.Contains(t, err.Error(), "-1.00 is negative")
	})
}
