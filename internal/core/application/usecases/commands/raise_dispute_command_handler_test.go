package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/dispute"
)

func TestRaiseDisputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	d := newPendingTestDispute(t, "ORD-1", time.Now())

	cmd, err := commands.NewRaiseDisputeCommand(
		d.ID(), "carrier scale is off", []string{"scan-1.jpg"})
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		disputeRepo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRaiseDisputeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, dispute.CategoryRejected, d.Category())
	assert.Equal(t, "carrier scale is off", d.Remark())
	assert.Equal(t, []string{"scan-1.jpg"}, d.Evidence())
	assert.False(t, d.IsPaid())
	assert.NotNil(t, d.ResolvedAt())

	disputeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRaiseDisputeCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()

	d := newPendingTestDispute(t, "ORD-1", time.Now())
	require.NoError(t, d.Reject("carrier scale is off", []string{"scan-1.jpg"}, time.Now()))

	cmd, err := commands.NewRaiseDisputeCommand(
		d.ID(), "second contest", []string{"scan-2.jpg"})
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRaiseDisputeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// The first contest stands; the dispute is not rewritten.
	require.ErrorIs(t, err, dispute.ErrDisputeAlreadyResolved)
	assert.Equal(t, "carrier scale is off", d.Remark())
	disputeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
