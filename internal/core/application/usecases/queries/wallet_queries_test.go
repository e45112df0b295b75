package queries_test

import (
	"testing"

	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetWalletBalanceQuery_Valid(t *testing.T) {
	merchantID := kernel.NewUUID()
	query, err := queries.NewGetWalletBalanceQuery(merchantID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, merchantID.IsEqual(query.MerchantID()))
}

func TestNewGetWalletBalanceQuery_EmptyMerchant(t *testing.T) {
	_, err := queries.NewGetWalletBalanceQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetWalletBalanceQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWalletBalanceQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWalletBalanceQueryIsNotConstructed)
}

func TestNewGetWalletStatementQuery_Valid(t *testing.T) {
	query, err := queries.NewGetWalletStatementQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetWalletStatementQuery_EmptyMerchant(t *testing.T) {
	_, err := queries.NewGetWalletStatementQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetWalletStatementQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWalletStatementQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWalletStatementQueryIsNotConstructed)
}
