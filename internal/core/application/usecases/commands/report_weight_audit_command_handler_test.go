package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"
)

func TestReportWeightAuditCommandHandler_Handle_OpensDispute(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	testOrder := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)
	dispatchTestOrder(t, testOrder)

	cmd, err := commands.NewReportWeightAuditCommand(
		"ORD-1", decimal.NewFromFloat(1.2), kernel.MoneyFromFloat(140))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(testOrder, nil).Once(),
		disputeRepo.On("GetPendingByOrderRef", ctx, "ORD-1").
			Return(nil, errs.NewObjectNotFoundError("orderRef", "ORD-1")).Once(),
		disputeRepo.On("Add", ctx, mock.AnythingOfType("*dispute.Dispute")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportWeightAuditCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	d := disputeRepo.Calls[1].Arguments.Get(1).(*dispute.Dispute)
	assert.Equal(t, "ORD-1", d.OrderRef())
	assert.Equal(t, "1123456789", d.AWB())
	assert.Equal(t, dispute.CategoryPending, d.Category())
	assert.True(t, decimal.NewFromFloat(0.5).Equal(d.EnteredWeight()))
	assert.True(t, decimal.NewFromFloat(1.2).Equal(d.CarrierWeight()))
	assert.Equal(t, "55.00", d.ExcessCharge().String())
	assert.False(t, d.IsPaid())

	disputeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportWeightAuditCommandHandler_Handle_NoExcessWeight(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	testOrder := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)
	dispatchTestOrder(t, testOrder)

	// Carrier confirms a lighter parcel than entered; nothing to dispute.
	cmd, err := commands.NewReportWeightAuditCommand(
		"ORD-1", decimal.NewFromFloat(0.4), kernel.MoneyFromFloat(70))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportWeightAuditCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	disputeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReportWeightAuditCommandHandler_Handle_OrderNotDispatched(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	testOrder := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)

	cmd, err := commands.NewReportWeightAuditCommand(
		"ORD-1", decimal.NewFromFloat(1.2), kernel.MoneyFromFloat(140))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportWeightAuditCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotDispatched)
	disputeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReportWeightAuditCommandHandler_Handle_DisputeAlreadyOpen(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	testOrder := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)
	dispatchTestOrder(t, testOrder)
	existing := newPendingTestDispute(t, "ORD-1", testOrder.CreatedAt())

	cmd, err := commands.NewReportWeightAuditCommand(
		"ORD-1", decimal.NewFromFloat(1.5), kernel.MoneyFromFloat(160))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(testOrder, nil).Once(),
		disputeRepo.On("GetPendingByOrderRef", ctx, "ORD-1").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportWeightAuditCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDisputeAlreadyOpen)
	disputeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
