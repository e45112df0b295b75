package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to ship an order with a chosen
// courier service. Dispatch computes the charges, allocates the AWB and
// debits the merchant wallet as one atomic unit.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef   string
	merchantID kernel.UUID
	courierID  string

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order.
// Validates that the order reference, merchant id and courier id are present.
func NewDispatchOrderCommand(orderRef string, merchantID kernel.UUID, courierID string) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRef(orderRef),
		cmd.setMerchantID(merchantID),
		cmd.setCourierID(courierID),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to dispatch.
func (c DispatchOrderCommand) OrderRef() string { return c.orderRef }

// MerchantID returns the merchant whose wallet pays for the shipment.
func (c DispatchOrderCommand) MerchantID() kernel.UUID { return c.merchantID }

// CourierID returns the rate card id of the chosen courier service.
func (c DispatchOrderCommand) CourierID() string { return c.courierID }

func (c *DispatchOrderCommand) setOrderRef(orderRef string) error {
	if strings.TrimSpace(orderRef) == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}

	c.orderRef = orderRef
	return nil
}

func (c *DispatchOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *DispatchOrderCommand) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierID")
	}

	c.courierID = courierID
	return nil
}
