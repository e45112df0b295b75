package dispute_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
)

func newPendingDispute(t *testing.T, now time.Time) *dispute.Dispute {
	t.Helper()
	d, err := dispute.NewDispute(
		kernel.NewUUID(), "ORD-1", "1123456789",
		decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.2),
		kernel.MoneyFromFloat(85), kernel.MoneyFromFloat(140),
		now)
	require.NoError(t, err)
	return d
}

func TestNewDispute(t *testing.T) {
	t.Run("opens pending with the computed excess", func(t *testing.T) {
		now := time.Now()
		d := newPendingDispute(t, now)

		assert.Equal(t, dispute.CategoryPending, d.Category())
		assert.True(t, d.IsPending())
		assert.False(t, d.IsPaid())
		assert.True(t, d.ExcessWeight().Equal(decimal.NewFromFloat(0.7)))
		assert.Equal(t, "55.00", d.ExcessCharge().String())
		assert.Equal(t, now.Add(dispute.AutoAcceptAfter), d.AutoAcceptAt())
		assert.Nil(t, d.ResolvedAt())
	})

	t.Run("rejects an audit at or below the entered weight", func(t *testing.T) {
		_, err := dispute.NewDispute(
			kernel.NewUUID(), "ORD-1", "1123456789",
			decimal.NewFromFloat(1.2), decimal.NewFromFloat(1.2),
			kernel.MoneyFromFloat(85), kernel.MoneyFromFloat(85),
			time.Now())
		require.Error(t, err)
	})

	t.Run("rejects a carrier charge below the entered charge", func(t *testing.T) {
		_, err := dispute.NewDispute(
			kernel.NewUUID(), "ORD-1", "1123456789",
			decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.2),
			kernel.MoneyFromFloat(85), kernel.MoneyFromFloat(40),
			time.Now())
		require.Error(t, err)
	})

	t.Run("rejects an empty awb", func(t *testing.T) {
		_, err := dispute.NewDispute(
			kernel.NewUUID(), "ORD-1", " ",
			decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.2),
			kernel.MoneyFromFloat(85), kernel.MoneyFromFloat(140),
			time.Now())
		require.Error(t, err)
	})
}

func TestDisputeMarkAccepted(t *testing.T) {
	t.Run("settles a pending dispute as paid", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())

		require.NoError(t, d.MarkAccepted(true, time.Now()))

		assert.Equal(t, dispute.CategoryAccepted, d.Category())
		assert.True(t, d.IsPaid())
		assert.NotNil(t, d.ResolvedAt())
	})

	t.Run("accepting twice fails", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())
		require.NoError(t, d.MarkAccepted(true, time.Now()))

		err := d.MarkAccepted(true, time.Now())

		require.ErrorIs(t, err, dispute.ErrDisputeAlreadyResolved)
		var resolvedErr *dispute.DisputeAlreadyResolvedError
		require.ErrorAs(t, err, &resolvedErr)
		assert.Equal(t, dispute.CategoryAccepted, resolvedErr.Category)
	})

	t.Run("a rejected dispute cannot be accepted", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())
		require.NoError(t, d.Reject("carrier scale is off", []string{"scan-1.jpg"}, time.Now()))

		err := d.MarkAccepted(true, time.Now())
		require.ErrorIs(t, err, dispute.ErrDisputeAlreadyResolved)
	})
}

func TestDisputeReject(t *testing.T) {
	t.Run("persists the remark and evidence", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())

		err := d.Reject("package weighed 0.5kg at handover", []string{"scan-1.jpg", "invoice.pdf"}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, dispute.CategoryRejected, d.Category())
		assert.Equal(t, "package weighed 0.5kg at handover", d.Remark())
		assert.Len(t, d.Evidence(), 2)
		assert.False(t, d.IsPaid())
	})

	t.Run("fails without a remark", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())

		err := d.Reject("  ", []string{"scan-1.jpg"}, time.Now())

		require.Error(t, err)
		assert.True(t, d.IsPending())
	})

	t.Run("fails without evidence", func(t *testing.T) {
		d := newPendingDispute(t, time.Now())

		err := d.Reject("carrier scale is off", nil, time.Now())

		require.Error(t, err)
		assert.True(t, d.IsPending())
	})
}

func TestDisputeIsExpired(t *testing.T) {
	now := time.Now()
	d := newPendingDispute(t, now)

	assert.False(t, d.IsExpired(now))
	assert.False(t, d.IsExpired(now.Add(dispute.AutoAcceptAfter-time.Minute)))
	assert.True(t, d.IsExpired(now.Add(dispute.AutoAcceptAfter)))

	t.Run("a resolved dispute never expires", func(t *testing.T) {
		require.NoError(t, d.MarkAccepted(true, now))
		assert.False(t, d.IsExpired(now.Add(dispute.AutoAcceptAfter)))
	})
}
