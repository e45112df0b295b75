package order

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the receiver pays for the goods.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentPrepaid means the goods were paid online at checkout.
	PaymentPrepaid

	// PaymentCOD means cash on delivery; dispatch adds a fixed COD surcharge.
	PaymentCOD
)

// PaymentMethodFromString parses a payment method from its display string.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "Prepaid":
		return PaymentPrepaid, nil
	case "COD":
		return PaymentCOD, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks the payment method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != PaymentPrepaid && m != PaymentCOD {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", int(m)))
	}
	return nil
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentPrepaid:
		return "Prepaid"
	case PaymentCOD:
		return "COD"
	default:
		return "Unknown"
	}
}

// ErrDestinationIsNotConstructed is returned when validating a zero-value Destination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination is the shipping address block of an order.
// It is an immutable value object; all fields are validated at construction.
type Destination struct { //nolint:recvcheck //using for validation
	name       string
	phone      string
	address    string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewDestination creates a validated shipping destination.
// Name, address, postal code, and country are required; the phone number
// must carry at least ten digits.
func NewDestination(name, phone, address, postalCode, country string) (Destination, error) {
	d := Destination{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setName(name),
		d.setPhone(phone),
		d.setAddress(address),
		d.setPostalCode(postalCode),
		d.setCountry(country),
	); err != nil {
		return Destination{}, err
	}

	return d, nil
}

// Validate checks the Destination was properly constructed.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Name returns the receiver name.
func (d Destination) Name() string { return d.name }

// Phone returns the receiver phone number.
func (d Destination) Phone() string { return d.phone }

// Address returns the street address.
func (d Destination) Address() string { return d.address }

// PostalCode returns the destination postal code.
func (d Destination) PostalCode() string { return d.postalCode }

// Country returns the destination country.
func (d Destination) Country() string { return d.country }

func (d *Destination) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	d.name = name
	return nil
}

func (d *Destination) setPhone(phone string) error {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return errs.NewValueIsInvalidErrorWithCause("receiver phone",
			fmt.Errorf("%q has fewer than 10 digits", phone))
	}
	d.phone = phone
	return nil
}

func (d *Destination) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("receiver address")
	}
	d.address = address
	return nil
}

func (d *Destination) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	d.postalCode = postalCode
	return nil
}

func (d *Destination) setCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return errs.NewValueIsRequiredError("country")
	}
	d.country = country
	return nil
}

// ErrPackageIsNotConstructed is returned when validating a zero-value Package.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
	"package must be created via NewPackage constructor")

// Package describes the physical parcel: dead weight in kilograms and
// dimensions in centimeters.
type Package struct { //nolint:recvcheck //using for validation
	weightKg decimal.Decimal
	lengthCm int
	widthCm  int
	heightCm int

	guard guard.ConstructorGuard
}

// NewPackage creates a validated parcel descriptor.
// Weight must be positive; dimensions must be positive whole centimeters.
func NewPackage(weightKg decimal.Decimal, lengthCm, widthCm, heightCm int) (Package, error) {
	p := Package{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setWeight(weightKg),
		p.setDimensions(lengthCm, widthCm, heightCm),
	); err != nil {
		return Package{}, err
	}

	return p, nil
}

// Validate checks the Package was properly constructed.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// WeightKg returns the dead weight in kilograms.
func (p Package) WeightKg() decimal.Decimal { return p.weightKg }

// LengthCm returns the parcel length in centimeters.
func (p Package) LengthCm() int { return p.lengthCm }

// WidthCm returns the parcel width in centimeters.
func (p Package) WidthCm() int { return p.widthCm }

// HeightCm returns the parcel height in centimeters.
func (p Package) HeightCm() int { return p.heightCm }

// Dimensions renders the parcel dimensions as "LxWxH".
func (p Package) Dimensions() string {
	return fmt.Sprintf("%dx%dx%d", p.lengthCm, p.widthCm, p.heightCm)
}

func (p *Package) setWeight(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("package weight",
			fmt.Errorf("%s is not greater than 0", weightKg.String()))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setDimensions(lengthCm, widthCm, heightCm int) error {
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("package dimensions",
			fmt.Errorf("%dx%dx%d contains a non-positive side", lengthCm, widthCm, heightCm))
	}
	p.lengthCm = lengthCm
	p.widthCm = widthCm
	p.heightCm = heightCm
	return nil
}

// ErrProductLineIsNotConstructed is returned when validating a zero-value ProductLine.
var ErrProductLineIsNotConstructed = errs.NewValueIsRequiredError(
	"product line must be created via NewProductLine constructor")

// ProductLine is one item row of the shipment contents.
type ProductLine struct { //nolint:recvcheck //using for validation
	name      string
	sku       string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewProductLine creates a validated product line.
func NewProductLine(name, sku string, quantity int, unitPrice kernel.Money) (ProductLine, error) {
	p := ProductLine{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setQuantity(quantity),
		unitPrice.ValidateNonNegative("unit price"),
	); err != nil {
		return ProductLine{}, err
	}

	p.sku = sku
	p.unitPrice = unitPrice
	return p, nil
}

// Validate checks the ProductLine was properly constructed.
func (p ProductLine) Validate() error {
	return p.guard.Validate(ErrProductLineIsNotConstructed)
}

// Name returns the product name.
func (p ProductLine) Name() string { return p.name }

// SKU returns the merchant SKU, possibly empty.
func (p ProductLine) SKU() string { return p.sku }

// Quantity returns the shipped quantity.
func (p ProductLine) Quantity() int { return p.quantity }

// UnitPrice returns the per-unit declared price.
func (p ProductLine) UnitPrice() kernel.Money { return p.unitPrice }

func (p *ProductLine) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *ProductLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}
