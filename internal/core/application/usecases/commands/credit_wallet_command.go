package commands

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCreditWalletCommandIsNotConstructed = errors.New(
	"CreditWalletCommand must be created via NewCreditWalletCommand constructor",
)

// CreditWalletCommand represents a wallet top-up. Settlement with the payment
// gateway happens elsewhere; here the recharge is a local balance mutation
// with its CREDIT ledger entry.
type CreditWalletCommand struct { //nolint:recvcheck //using for validation
	merchantID  kernel.UUID
	amount      kernel.Money
	description string

	guard guard.ConstructorGuard
}

// NewCreditWalletCommand creates a command to credit a merchant wallet.
// The amount must be positive; a blank description defaults to a recharge.
func NewCreditWalletCommand(merchantID kernel.UUID, amount kernel.Money, description string) (CreditWalletCommand, error) {
	if err := merchantID.Validate(); err != nil {
		return CreditWalletCommand{}, err
	}
	if !amount.IsPositive() {
		return CreditWalletCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	if strings.TrimSpace(description) == "" {
		description = "Wallet recharge"
	}

	return CreditWalletCommand{
		merchantID:  merchantID,
		amount:      amount,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditWalletCommand) Validate() error {
	return c.guard.Validate(ErrCreditWalletCommandIsNotConstructed)
}

// MerchantID returns the wallet owner.
func (c CreditWalletCommand) MerchantID() kernel.UUID { return c.merchantID }

// Amount returns the top-up amount.
func (c CreditWalletCommand) Amount() kernel.Money { return c.amount }

// Description returns the ledger entry description.
func (c CreditWalletCommand) Description() string { return c.description }
