// Package disputerepo persists weight discrepancy disputes.
package disputerepo

import (
	"time"

	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// DisputeDTO represents the database structure for a weight dispute.
// Evidence image URLs land in a text array; resolved_at stays NULL while
// the dispute is pending.
type DisputeDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRef      string    `gorm:"index"`
	AWB           string    `gorm:"column:awb"`
	EnteredWeight decimal.Decimal `gorm:"type:numeric"`
	CarrierWeight decimal.Decimal `gorm:"type:numeric"`
	EnteredCharge decimal.Decimal `gorm:"type:numeric"`
	CarrierCharge decimal.Decimal `gorm:"type:numeric"`
	Category      int             `gorm:"index"`
	IsPaid        bool
	Remark        string
	Evidence      pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time
	AutoAcceptAt  time.Time
	ResolvedAt    *time.Time
}

// TableName specifies the database table name for disputes.
func (DisputeDTO) TableName() string {
	return "weight_disputes"
}

func fromDomain(d *dispute.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:            d.ID().Bytes(),
		OrderRef:      d.OrderRef(),
		AWB:           d.AWB(),
		EnteredWeight: d.EnteredWeight(),
		CarrierWeight: d.CarrierWeight(),
		EnteredCharge: d.EnteredCharge().Decimal(),
		CarrierCharge: d.CarrierCharge().Decimal(),
		Category:      int(d.Category()),
		IsPaid:        d.IsPaid(),
		Remark:        d.Remark(),
		Evidence:      pq.StringArray(d.Evidence()),
		CreatedAt:     d.CreatedAt(),
		AutoAcceptAt:  d.AutoAcceptAt(),
		ResolvedAt:    d.ResolvedAt(),
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		dto.OrderRef,
		dto.AWB,
		dto.EnteredWeight,
		dto.CarrierWeight,
		kernel.NewMoney(dto.EnteredCharge),
		kernel.NewMoney(dto.CarrierCharge),
		dispute.Category(dto.Category),
		dto.IsPaid,
		dto.Remark,
		[]string(dto.Evidence),
		dto.CreatedAt,
		dto.AutoAcceptAt,
		dto.ResolvedAt,
	)
}
