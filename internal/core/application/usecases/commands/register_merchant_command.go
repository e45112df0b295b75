package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrRegisterMerchantCommandIsNotConstructed = errors.New(
	"RegisterMerchantCommand must be created via NewRegisterMerchantCommand constructor",
)

// RegisterMerchantCommand represents onboarding a merchant: it opens their
// wallet account with the promotional opening balance.
type RegisterMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterMerchantCommand creates a command to register a merchant.
func NewRegisterMerchantCommand(merchantID kernel.UUID) (RegisterMerchantCommand, error) {
	if err := merchantID.Validate(); err != nil {
		return RegisterMerchantCommand{}, err
	}

	return RegisterMerchantCommand{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMerchantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMerchantCommandIsNotConstructed)
}

// MerchantID returns the merchant to onboard.
func (c RegisterMerchantCommand) MerchantID() kernel.UUID { return c.merchantID }
