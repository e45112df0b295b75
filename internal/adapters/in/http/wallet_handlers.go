package http

import (
	"net/http"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterMerchant handles POST /api/v1/merchants - opens a zero-balance
// wallet account for a new merchant.
func (s *Server) RegisterMerchant(ctx echo.Context) error {
	var req RegisterMerchantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchant, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRegisterMerchantCommand(merchant)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.registerMerchantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreditWallet handles POST /api/v1/wallet/:id/credit - tops up a merchant
// wallet.
func (s *Server) CreditWallet(ctx echo.Context) error {
	merchant, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req CreditWalletRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreditWalletCommand(merchant, kernel.NewMoney(req.Amount), req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.creditWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetWalletBalance handles GET /api/v1/wallet/:id/balance.
func (s *Server) GetWalletBalance(ctx echo.Context) error {
	merchant, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetWalletBalanceQuery(merchant)
	if err != nil {
		return fail(ctx, err)
	}

	balance, err := s.getWalletBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WalletBalance{
		MerchantID: balance.MerchantID,
		Balance:    balance.Balance,
	})
}

// GetWalletStatement handles GET /api/v1/wallet/:id/transactions - the
// wallet ledger, newest first.
func (s *Server) GetWalletStatement(ctx echo.Context) error {
	merchant, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetWalletStatementQuery(merchant)
	if err != nil {
		return fail(ctx, err)
	}

	statement, err := s.getWalletStatementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]WalletTransaction, len(statement))
	for i, tx := range statement {
		response[i] = WalletTransaction{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Reference:   tx.Reference,
			CreatedAt:   tx.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
