package order_test

import (
	"testing"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDestination(t *testing.T) order.Destination {
	t.Helper()
	d, err := order.NewDestination("Rahul Kumar", "9876543210", "12 MG Road, Bengaluru", "560001", "India")
	require.NoError(t, err)
	return d
}

func validParcel(t *testing.T) order.Package {
	t.Helper()
	p, err := order.NewPackage(decimal.NewFromFloat(0.5), 10, 10, 10)
	require.NoError(t, err)
	return p
}

func validProducts(t *testing.T) []order.ProductLine {
	t.Helper()
	line, err := order.NewProductLine("Commercial Goods", "CG-01", 1, kernel.MoneyFromFloat(1000))
	require.NoError(t, err)
	return []order.ProductLine{line}
}

func newTestOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		"ORD-1",
		kernel.NewUUID(),
		kernel.MoneyFromFloat(1000),
		method,
		false,
		validParcel(t),
		validProducts(t),
		"MAIN HUB",
		validDestination(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func dispatchTestOrder(t *testing.T, o *order.Order) {
	t.Helper()
	charges, err := order.NewChargeBreakdown(
		kernel.MoneyFromFloat(85), kernel.ZeroMoney(), kernel.MoneyFromFloat(50))
	require.NoError(t, err)
	assignment, err := order.NewCourierAssignment(
		"c3", "DELHIVERY EXPRESS AIR", order.ModeAir, "1234567890", charges)
	require.NoError(t, err)
	require.NoError(t, o.AssignCourier(assignment, time.Now()))
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a valid order in status New", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)

		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-1", o.Ref())
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.Courier())
		assert.Empty(t, o.AWB())
		assert.Equal(t, order.PaymentCOD, o.Payment())
		assert.Nil(t, o.PickupScheduledAt())
	})

	t.Run("should fail with empty reference", func(t *testing.T) {
		_, err := order.NewOrder(
			"  ", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentPrepaid, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order reference")
	})

	t.Run("should fail with invalid merchant id", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := order.NewOrder(
			"ORD-2", invalidID, kernel.MoneyFromFloat(1000), order.PaymentPrepaid, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t), time.Now())
		require.Error(t, err)
	})

	t.Run("should fail with negative declared value", func(t *testing.T) {
		_, err := order.NewOrder(
			"ORD-3", kernel.NewUUID(), kernel.MoneyFromFloat(-1), order.PaymentPrepaid, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declared value")
	})

	t.Run("should fail without products", func(t *testing.T) {
		_, err := order.NewOrder(
			"ORD-4", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentPrepaid, false,
			validParcel(t), nil, "MAIN HUB", validDestination(t), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidDestination order.Destination
		_, err := order.NewOrder(
			"", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentUnknown, false,
			validParcel(t), validProducts(t), "", invalidDestination, time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order reference")
		assert.Contains(t, err.Error(), "payment method")
		assert.Contains(t, err.Error(), "pickup location")
		assert.Contains(t, err.Error(), "destination")
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAssignCourier(t *testing.T) {
	t.Run("assigns courier and transitions to ReadyToShip", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		dispatchTestOrder(t, o)

		assert.Equal(t, order.ReadyToShip, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, "1234567890", o.AWB())
		assert.Equal(t, "135.00", o.Courier().Charges().Total().String())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects a second dispatch", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		dispatchTestOrder(t, o)

		charges, _ := order.NewChargeBreakdown(
			kernel.MoneyFromFloat(38), kernel.ZeroMoney(), kernel.ZeroMoney())
		assignment, _ := order.NewCourierAssignment(
			"c4", "DELHIVERY SURFACE", order.ModeSurface, "3987654321", charges)

		err := o.AssignCourier(assignment, time.Now())
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, "1234567890", o.AWB())
	})

	t.Run("rejects an unconstructed assignment", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		err := o.AssignCourier(order.CourierAssignment{}, time.Now())
		require.Error(t, err)
		assert.Equal(t, order.New, o.Status())
	})
}

func TestOrderLifecycle(t *testing.T) {
	t.Run("walks the full delivery path", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		dispatchTestOrder(t, o)

		now := time.Now()
		require.NoError(t, o.MarkManifest(now))
		require.NoError(t, o.SchedulePickup(now))
		require.NotNil(t, o.PickupScheduledAt())
		require.NoError(t, o.ConfirmPickup(now))
		require.NoError(t, o.MarkOutForDelivery(now))
		require.NoError(t, o.MarkDelivered(now))

		assert.Equal(t, order.Delivered, o.Status())
		require.NoError(t, o.Validate())
	})

	t.Run("updates the status-changed timestamp", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		created := o.StatusChangedAt()

		later := created.Add(time.Hour)
		dispatchTestOrder(t, o)
		require.NoError(t, o.MarkManifest(later))
		assert.Equal(t, later, o.StatusChangedAt())
	})

	t.Run("RTO from OutForDelivery", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		dispatchTestOrder(t, o)
		now := time.Now()
		require.NoError(t, o.MarkManifest(now))
		require.NoError(t, o.SchedulePickup(now))
		require.NoError(t, o.ConfirmPickup(now))
		require.NoError(t, o.MarkOutForDelivery(now))

		require.NoError(t, o.InitiateRTO(now))
		assert.Equal(t, order.RTO, o.Status())
		assert.Equal(t, "1234567890", o.AWB(), "AWB survives RTO")
	})
}

func TestOrderCancel(t *testing.T) {
	t.Run("cancels a new order", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancels every pre-pickup state", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		dispatchTestOrder(t, o)
		now := time.Now()
		require.NoError(t, o.MarkManifest(now))
		require.NoError(t, o.SchedulePickup(now))

		require.NoError(t, o.Cancel(now))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejects cancellation after pickup with the policy error", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		dispatchTestOrder(t, o)
		now := time.Now()
		require.NoError(t, o.MarkManifest(now))
		require.NoError(t, o.SchedulePickup(now))
		require.NoError(t, o.ConfirmPickup(now))

		err := o.Cancel(now)
		require.ErrorIs(t, err, order.ErrNoCancellationAfterPickup)
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.MarkOutForDelivery(now))
		err = o.Cancel(now)
		require.ErrorIs(t, err, order.ErrNoCancellationAfterPickup)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("rejects cancellation of a delivered order as invalid transition", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentPrepaid)
		dispatchTestOrder(t, o)
		now := time.Now()
		require.NoError(t, o.MarkManifest(now))
		require.NoError(t, o.SchedulePickup(now))
		require.NoError(t, o.ConfirmPickup(now))
		require.NoError(t, o.MarkOutForDelivery(now))
		require.NoError(t, o.MarkDelivered(now))

		require.ErrorIs(t, o.Cancel(now), order.ErrInvalidTransition)
	})
}

func TestOrderClone(t *testing.T) {
	o := newTestOrder(t, order.PaymentCOD)
	dispatchTestOrder(t, o)

	clone, err := o.Clone("ORD-1-COPY", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ORD-1-COPY", clone.Ref())
	assert.Equal(t, order.New, clone.Status())
	assert.Nil(t, clone.Courier())
	assert.Equal(t, o.DeclaredValue(), clone.DeclaredValue())
	assert.Equal(t, o.Destination(), clone.Destination())
}

func TestOrderIsDeletable(t *testing.T) {
	o := newTestOrder(t, order.PaymentPrepaid)
	assert.True(t, o.IsDeletable())

	dispatchTestOrder(t, o)
	assert.False(t, o.IsDeletable())

	require.NoError(t, o.Cancel(time.Now()))
	assert.True(t, o.IsDeletable())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a dispatched order", func(t *testing.T) {
		charges, err := order.NewChargeBreakdown(
			kernel.MoneyFromFloat(85), kernel.ZeroMoney(), kernel.MoneyFromFloat(50))
		require.NoError(t, err)
		assignment, err := order.NewCourierAssignment(
			"c3", "DELHIVERY EXPRESS AIR", order.ModeAir, "1234567890", charges)
		require.NoError(t, err)

		now := time.Now()
		o, err := order.RestoreOrder(
			"ORD-9", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentCOD, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t),
			order.InTransit, &assignment, now, now, &now)
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, "1234567890", o.AWB())
	})

	t.Run("rejects a dispatched status without courier", func(t *testing.T) {
		now := time.Now()
		_, err := order.RestoreOrder(
			"ORD-9", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentCOD, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t),
			order.InTransit, nil, now, now, nil)
		require.Error(t, err)
	})

	t.Run("rejects a New status with courier", func(t *testing.T) {
		charges, _ := order.NewChargeBreakdown(
			kernel.MoneyFromFloat(85), kernel.ZeroMoney(), kernel.ZeroMoney())
		assignment, _ := order.NewCourierAssignment(
			"c3", "DELHIVERY EXPRESS AIR", order.ModeAir, "1234567890", charges)

		now := time.Now()
		_, err := order.RestoreOrder(
			"ORD-9", kernel.NewUUID(), kernel.MoneyFromFloat(1000), order.PaymentCOD, false,
			validParcel(t), validProducts(t), "MAIN HUB", validDestination(t),
			order.New, &assignment, now, now, nil)
		require.Error(t, err)
	})
}
