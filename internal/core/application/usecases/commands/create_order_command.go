package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipment order.
// The shipment descriptor is immutable after creation: declared value and
// payment method fix the charges computed later at dispatch.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "ORD-1001", merchantID, kernel.MoneyFromFloat(1499),
//	    order.PaymentCOD, false, parcel, products, "MAIN HUB", destination)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ref            string
	merchantID     kernel.UUID
	declaredValue  kernel.Money
	payment        order.PaymentMethod
	insured        bool
	parcel         order.Package
	products       []order.ProductLine
	pickupLocation string
	destination    order.Destination

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates the reference, merchant id, declared value, payment method and
// all shipment value objects. Returns an error if any validation fails.
func NewCreateOrderCommand(
	ref string,
	merchantID kernel.UUID,
	declaredValue kernel.Money,
	payment order.PaymentMethod,
	insured bool,
	parcel order.Package,
	products []order.ProductLine,
	pickupLocation string,
	destination order.Destination,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRef(ref),
		cmd.setMerchantID(merchantID),
		cmd.setDeclaredValue(declaredValue),
		cmd.setPayment(payment),
		cmd.setParcel(parcel),
		cmd.setProducts(products),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.insured = insured
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Ref returns the merchant-assigned order reference.
func (c CreateOrderCommand) Ref() string { return c.ref }

// MerchantID returns the owning merchant id.
func (c CreateOrderCommand) MerchantID() kernel.UUID { return c.merchantID }

// DeclaredValue returns the declared value of the goods.
func (c CreateOrderCommand) DeclaredValue() kernel.Money { return c.declaredValue }

// Payment returns the payment method.
func (c CreateOrderCommand) Payment() order.PaymentMethod { return c.payment }

// Insured reports whether the shipment is insured.
func (c CreateOrderCommand) Insured() bool { return c.insured }

// Parcel returns the package descriptor.
func (c CreateOrderCommand) Parcel() order.Package { return c.parcel }

// Products returns the product lines.
func (c CreateOrderCommand) Products() []order.ProductLine { return c.products }

// PickupLocation returns the pickup source name.
func (c CreateOrderCommand) PickupLocation() string { return c.pickupLocation }

// Destination returns the shipping destination.
func (c CreateOrderCommand) Destination() order.Destination { return c.destination }

func (c *CreateOrderCommand) setRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errs.NewValueIsRequiredError("ref")
	}

	c.ref = ref
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.ValidateNonNegative("declaredValue"); err != nil {
		return err
	}

	c.declaredValue = declaredValue
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *CreateOrderCommand) setParcel(parcel order.Package) error {
	if err := parcel.Validate(); err != nil {
		return err
	}

	c.parcel = parcel
	return nil
}

func (c *CreateOrderCommand) setProducts(products []order.ProductLine) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, line := range products {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.products = products
	return nil
}

func (c *CreateOrderCommand) setPickupLocation(pickupLocation string) error {
	if strings.TrimSpace(pickupLocation) == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}

	c.pickupLocation = pickupLocation
	return nil
}

func (c *CreateOrderCommand) setDestination(destination order.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
