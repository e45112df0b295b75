package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/wallet"
	"shipdesk/internal/pkg/errs"
)

func TestRegisterMerchantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()

	cmd, err := commands.NewRegisterMerchantCommand(merchantID)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("GetAccount", ctx, merchantID).
			Return(nil, errs.NewObjectNotFoundError("merchantID", merchantID)).Once(),
		walletRepo.On("AddAccount", ctx, mock.AnythingOfType("*wallet.Account")).Return(nil).Once(),
		walletRepo.On("AddTransaction", ctx, mock.AnythingOfType("wallet.Transaction")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterMerchantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	account := walletRepo.Calls[1].Arguments.Get(1).(*wallet.Account)
	assert.Equal(t, merchantID, account.ID())
	assert.Equal(t, "5000.00", account.Balance().String())

	// The promotional credit lands as the first ledger entry.
	tx := walletRepo.Calls[2].Arguments.Get(1).(wallet.Transaction)
	assert.Equal(t, wallet.Credit, tx.Type())
	assert.Equal(t, "5000.00", tx.Amount().String())
	assert.Equal(t, "Opening balance", tx.Description())

	walletRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterMerchantCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	account := newTestAccount(t, merchantID, 5000)

	cmd, err := commands.NewRegisterMerchantCommand(merchantID)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("GetAccount", ctx, merchantID).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterMerchantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMerchantAlreadyRegistered)
	walletRepo.AssertNotCalled(t, "AddAccount", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
