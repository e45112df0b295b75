package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	// Never dispatched: safe to remove.
	aggregate := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)

	cmd, err := commands.NewDeleteOrderCommand("ORD-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(aggregate, nil).Once(),
		orderRepo.On("Delete", ctx, "ORD-1").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_InFlightOrder(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	aggregate := newTestOrder(t, "ORD-1", merchantID, order.PaymentPrepaid)
	dispatchTestOrder(t, aggregate)
	moveToStatus(t, aggregate, order.InTransit)

	cmd, err := commands.NewDeleteOrderCommand("ORD-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, "ORD-1").Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotDeletable)
	assert.Equal(t, order.InTransit, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
