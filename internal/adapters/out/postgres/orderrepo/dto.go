// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are keyed by their merchant-assigned reference. Courier and charge
// columns stay NULL until the order has been dispatched; the unique index on
// the air waybill number backs the collision check during AWB allocation.
type OrderDTO struct {
	Ref               string          `gorm:"primaryKey"`
	MerchantID        uuid.UUID       `gorm:"type:uuid;index"`
	DeclaredValue     decimal.Decimal `gorm:"type:numeric"`
	Payment           int
	Insured           bool
	WeightKg          decimal.Decimal `gorm:"type:numeric"`
	LengthCm          int
	WidthCm           int
	HeightCm          int
	PickupLocation    string
	Destination       DestinationDTO `gorm:"embedded;embeddedPrefix:dest_"`
	Status            int            `gorm:"index"`
	CourierID         *string
	CourierName       *string
	CourierMode       *int
	AWB               *string          `gorm:"column:awb;uniqueIndex"`
	ChargeShipping    *decimal.Decimal `gorm:"type:numeric"`
	ChargeInsurance   *decimal.Decimal `gorm:"type:numeric"`
	ChargeCOD         *decimal.Decimal `gorm:"column:charge_cod;type:numeric"`
	ChargeTotal       *decimal.Decimal `gorm:"type:numeric"`
	CreatedAt         time.Time
	StatusChangedAt   time.Time
	PickupScheduledAt *time.Time
	Products          []ProductDTO `gorm:"foreignKey:OrderRef;references:Ref"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DestinationDTO represents the embedded shipping address block within the
// orders table.
type DestinationDTO struct {
	Name       string
	Phone      string
	Address    string
	PostalCode string
	Country    string
}

// ProductDTO represents one content line of an order.
type ProductDTO struct {
	ID        uint   `gorm:"primaryKey"`
	OrderRef  string `gorm:"index"`
	Name      string
	SKU       string `gorm:"column:sku"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order content lines.
func (ProductDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		Ref:            o.Ref(),
		MerchantID:     o.MerchantID().Bytes(),
		DeclaredValue:  o.DeclaredValue().Decimal(),
		Payment:        int(o.Payment()),
		Insured:        o.IsInsured(),
		WeightKg:       o.Parcel().WeightKg(),
		LengthCm:       o.Parcel().LengthCm(),
		WidthCm:        o.Parcel().WidthCm(),
		HeightCm:       o.Parcel().HeightCm(),
		PickupLocation: o.PickupLocation(),
		Destination: DestinationDTO{
			Name:       o.Destination().Name(),
			Phone:      o.Destination().Phone(),
			Address:    o.Destination().Address(),
			PostalCode: o.Destination().PostalCode(),
			Country:    o.Destination().Country(),
		},
		Status:            int(o.Status()),
		CreatedAt:         o.CreatedAt(),
		StatusChangedAt:   o.StatusChangedAt(),
		PickupScheduledAt: o.PickupScheduledAt(),
	}

	if assignment := o.Courier(); assignment != nil {
		courierID := assignment.CourierID()
		courierName := assignment.CourierName()
		courierMode := int(assignment.Mode())
		awb := assignment.AWB()
		shipping := assignment.Charges().Shipping().Decimal()
		insurance := assignment.Charges().Insurance().Decimal()
		cod := assignment.Charges().COD().Decimal()
		total := assignment.Charges().Total().Decimal()

		dto.CourierID = &courierID
		dto.CourierName = &courierName
		dto.CourierMode = &courierMode
		dto.AWB = &awb
		dto.ChargeShipping = &shipping
		dto.ChargeInsurance = &insurance
		dto.ChargeCOD = &cod
		dto.ChargeTotal = &total
	}

	for _, line := range o.Products() {
		dto.Products = append(dto.Products, ProductDTO{
			OrderRef:  o.Ref(),
			Name:      line.Name(),
			SKU:       line.SKU(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the courier assignment
// using RestoreOrder, which re-validates the status/courier invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	parcel, err := order.NewPackage(dto.WeightKg, dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(
		dto.Destination.Name,
		dto.Destination.Phone,
		dto.Destination.Address,
		dto.Destination.PostalCode,
		dto.Destination.Country,
	)
	if err != nil {
		return nil, err
	}

	products := make([]order.ProductLine, 0, len(dto.Products))
	for _, line := range dto.Products {
		product, lineErr := order.NewProductLine(
			line.Name,
			line.SKU,
			line.Quantity,
			kernel.NewMoney(line.UnitPrice),
		)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, product)
	}

	var assignment *order.CourierAssignment
	if dto.CourierID != nil {
		charges, chargesErr := order.NewChargeBreakdown(
			kernel.NewMoney(*dto.ChargeShipping),
			kernel.NewMoney(*dto.ChargeInsurance),
			kernel.NewMoney(*dto.ChargeCOD),
		)
		if chargesErr != nil {
			return nil, chargesErr
		}

		restored, assignErr := order.NewCourierAssignment(
			*dto.CourierID,
			*dto.CourierName,
			order.TransportMode(*dto.CourierMode),
			*dto.AWB,
			charges,
		)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &restored
	}

	return order.RestoreOrder(
		dto.Ref,
		merchantID,
		kernel.NewMoney(dto.DeclaredValue),
		order.PaymentMethod(dto.Payment),
		dto.Insured,
		parcel,
		products,
		dto.PickupLocation,
		destination,
		order.Status(dto.Status),
		assignment,
		dto.CreatedAt,
		dto.StatusChangedAt,
		dto.PickupScheduledAt,
	)
}
