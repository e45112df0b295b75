package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrReportWeightAuditCommandIsNotConstructed = errors.New(
	"ReportWeightAuditCommand must be created via NewReportWeightAuditCommand constructor",
)

// ReportWeightAuditCommand represents a carrier's post-pickup weight audit
// of one shipment.
type ReportWeightAuditCommand struct { //nolint:recvcheck //using for validation
	orderRef      string
	carrierWeight decimal.Decimal
	carrierCharge kernel.Money

	guard guard.ConstructorGuard
}

// NewReportWeightAuditCommand creates a command to report a weight audit.
// The carrier weight must be positive and the carrier charge non-negative.
func NewReportWeightAuditCommand(
	orderRef string,
	carrierWeight decimal.Decimal,
	carrierCharge kernel.Money,
) (ReportWeightAuditCommand, error) {
	if strings.TrimSpace(orderRef) == "" {
		return ReportWeightAuditCommand{}, errs.NewValueIsRequiredError("orderRef")
	}
	if !carrierWeight.IsPositive() {
		return ReportWeightAuditCommand{}, errs.NewValueIsInvalidErrorWithCause("carrierWeight",
			fmt.Errorf("%s is not greater than 0", carrierWeight))
	}
	if err := carrierCharge.ValidateNonNegative("carrierCharge"); err != nil {
		return ReportWeightAuditCommand{}, err
	}

	return ReportWeightAuditCommand{
		orderRef:      orderRef,
		carrierWeight: carrierWeight,
		carrierCharge: carrierCharge,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportWeightAuditCommand) Validate() error {
	return c.guard.Validate(ErrReportWeightAuditCommandIsNotConstructed)
}

// OrderRef returns the reference of the audited order.
func (c ReportWeightAuditCommand) OrderRef() string { return c.orderRef }

// CarrierWeight returns the weight the carrier measured, in kilograms.
func (c ReportWeightAuditCommand) CarrierWeight() decimal.Decimal { return c.carrierWeight }

// CarrierCharge returns the shipping charge the carrier billed.
func (c ReportWeightAuditCommand) CarrierCharge() kernel.Money { return c.carrierCharge }
