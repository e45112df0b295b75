package dispute

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

// AutoAcceptAfter is how long a dispute may stay pending before the sweep
// treats it as accepted.
const AutoAcceptAfter = 3 * 24 * time.Hour

// Category is the resolution state of a weight dispute.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryPending means the dispute awaits a merchant decision.
	CategoryPending

	// CategoryAccepted means the merchant paid (or auto-accepted) the excess charge.
	CategoryAccepted

	// CategoryRejected means the merchant contested the audit with evidence.
	CategoryRejected
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryPending:  "Pending",
		CategoryAccepted: "Accepted",
		CategoryRejected: "Rejected",
	}
}

// CategoryFromString parses a category from its display label.
func CategoryFromString(s string) (Category, error) {
	for category, label := range getCategoryStrings() {
		if label == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("dispute category",
		fmt.Errorf("%q is not a known dispute category", s))
}

// Validate checks the category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dispute category",
			fmt.Errorf("%d is not a known dispute category", int(c)))
	}
	return nil
}

// String implements fmt.Stringer using the display labels.
func (c Category) String() string {
	if label, ok := getCategoryStrings()[c]; ok {
		return label
	}
	return "Unknown"
}

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
	// created through the NewDispute or RestoreDispute factory methods.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute or RestoreDispute")

	// ErrDisputeAlreadyResolved is the sentinel error for actions against
	// disputes that are no longer pending.
	ErrDisputeAlreadyResolved = errors.New("dispute is already resolved")
)

// DisputeAlreadyResolvedError reports a rejected action against a resolved
// dispute together with its current category.
type DisputeAlreadyResolvedError struct {
	DisputeID kernel.UUID
	Category  Category
}

// Error formats the rejected action with the dispute id and its category.
func (e *DisputeAlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: dispute %s is %s",
		ErrDisputeAlreadyResolved, e.DisputeID, e.Category)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *DisputeAlreadyResolvedError) Unwrap() error {
	return ErrDisputeAlreadyResolved
}

// Dispute is the aggregate tracking one weight audit against a dispatched
// order.
//
// Dispute follows these invariants:
//   - The excess weight is strictly positive; audits at or below the entered
//     weight never become disputes
//   - The excess charge equals carrier charge minus entered charge, fixed at
//     creation time
//   - Only a pending dispute can be accepted, rejected or swept; resolved
//     disputes are immutable, so the auto-accept sweep is idempotent
type Dispute struct {
	id            kernel.UUID
	orderRef      string
	awb           string
	enteredWeight decimal.Decimal
	carrierWeight decimal.Decimal
	enteredCharge kernel.Money
	carrierCharge kernel.Money
	category      Category
	isPaid        bool
	remark        string
	evidence      []string
	createdAt     time.Time
	autoAcceptAt  time.Time
	resolvedAt    *time.Time

	isConstructed bool
}

// NewDispute opens a pending dispute for a weight audit. The carrier weight
// must exceed the entered weight, otherwise the audit is not disputable.
func NewDispute(
	id kernel.UUID,
	orderRef string,
	awb string,
	enteredWeight decimal.Decimal,
	carrierWeight decimal.Decimal,
	enteredCharge kernel.Money,
	carrierCharge kernel.Money,
	now time.Time,
) (*Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderRef) == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}
	if strings.TrimSpace(awb) == "" {
		return nil, errs.NewValueIsRequiredError("awb")
	}
	if !carrierWeight.GreaterThan(enteredWeight) {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrierWeight",
			fmt.Errorf("%s does not exceed the entered weight %s", carrierWeight, enteredWeight))
	}
	if carrierCharge.LessThan(enteredCharge) {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrierCharge",
			fmt.Errorf("%s is below the entered charge %s", carrierCharge, enteredCharge))
	}

	return &Dispute{
		id:            id,
		orderRef:      orderRef,
		awb:           awb,
		enteredWeight: enteredWeight,
		carrierWeight: carrierWeight,
		enteredCharge: enteredCharge,
		carrierCharge: carrierCharge,
		category:      CategoryPending,
		createdAt:     now,
		autoAcceptAt:  now.Add(AutoAcceptAfter),
		isConstructed: true,
	}, nil
}

// RestoreDispute reconstructs a Dispute from persistence.
func RestoreDispute(
	id kernel.UUID,
	orderRef string,
	awb string,
	enteredWeight decimal.Decimal,
	carrierWeight decimal.Decimal,
	enteredCharge kernel.Money,
	carrierCharge kernel.Money,
	category Category,
	isPaid bool,
	remark string,
	evidence []string,
	createdAt time.Time,
	autoAcceptAt time.Time,
	resolvedAt *time.Time,
) (*Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderRef) == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	return &Dispute{
		id:            id,
		orderRef:      orderRef,
		awb:           awb,
		enteredWeight: enteredWeight,
		carrierWeight: carrierWeight,
		enteredCharge: enteredCharge,
		carrierCharge: carrierCharge,
		category:      category,
		isPaid:        isPaid,
		remark:        remark,
		evidence:      evidence,
		createdAt:     createdAt,
		autoAcceptAt:  autoAcceptAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Dispute instance was properly constructed.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute id.
func (d *Dispute) ID() kernel.UUID { return d.id }

// OrderRef returns the reference of the audited order.
func (d *Dispute) OrderRef() string { return d.orderRef }

// AWB returns the air waybill number of the audited shipment.
func (d *Dispute) AWB() string { return d.awb }

// EnteredWeight returns the weight the merchant declared, in kilograms.
func (d *Dispute) EnteredWeight() decimal.Decimal { return d.enteredWeight }

// CarrierWeight returns the weight the carrier measured, in kilograms.
func (d *Dispute) CarrierWeight() decimal.Decimal { return d.carrierWeight }

// ExcessWeight returns carrier weight minus entered weight, in kilograms.
func (d *Dispute) ExcessWeight() decimal.Decimal {
	return d.carrierWeight.Sub(d.enteredWeight)
}

// EnteredCharge returns the shipping charge computed from the entered weight.
func (d *Dispute) EnteredCharge() kernel.Money { return d.enteredCharge }

// CarrierCharge returns the shipping charge the carrier billed.
func (d *Dispute) CarrierCharge() kernel.Money { return d.carrierCharge }

// ExcessCharge returns the amount the merchant owes if the audit stands.
func (d *Dispute) ExcessCharge() kernel.Money {
	return d.carrierCharge.Sub(d.enteredCharge)
}

// Category returns the dispute resolution state.
func (d *Dispute) Category() Category { return d.category }

// IsPaid reports whether the excess charge was debited from the wallet.
func (d *Dispute) IsPaid() bool { return d.isPaid }

// Remark returns the merchant's objection, empty unless rejected.
func (d *Dispute) Remark() string { return d.remark }

// Evidence returns the attachment references backing a rejection.
func (d *Dispute) Evidence() []string { return d.evidence }

// CreatedAt returns when the audit was reported.
func (d *Dispute) CreatedAt() time.Time { return d.createdAt }

// AutoAcceptAt returns the deadline after which the sweep accepts the dispute.
func (d *Dispute) AutoAcceptAt() time.Time { return d.autoAcceptAt }

// ResolvedAt returns when the dispute left Pending, nil while pending.
func (d *Dispute) ResolvedAt() *time.Time { return d.resolvedAt }

// IsPending reports whether the dispute still awaits a merchant decision.
func (d *Dispute) IsPending() bool { return d.category == CategoryPending }

// IsExpired reports whether a pending dispute has passed its auto-accept
// deadline.
func (d *Dispute) IsExpired(now time.Time) bool {
	return d.IsPending() && !now.Before(d.autoAcceptAt)
}

// MarkAccepted settles a pending dispute after the excess charge was debited.
// paid distinguishes a merchant payment from an auto-accept sweep that could
// not collect.
func (d *Dispute) MarkAccepted(paid bool, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsPending() {
		return &DisputeAlreadyResolvedError{DisputeID: d.id, Category: d.category}
	}

	d.category = CategoryAccepted
	d.isPaid = paid
	d.resolvedAt = &now
	return nil
}

// Reject contests a pending dispute. The remark must be non-empty and at
// least one evidence attachment is required.
func (d *Dispute) Reject(remark string, evidence []string, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsPending() {
		return &DisputeAlreadyResolvedError{DisputeID: d.id, Category: d.category}
	}
	if strings.TrimSpace(remark) == "" {
		return errs.NewValueIsRequiredError("remark")
	}
	if len(evidence) == 0 {
		return errs.NewValueIsRequiredError("evidence")
	}

	d.category = CategoryRejected
	d.remark = remark
	d.evidence = evidence
	d.resolvedAt = &now
	return nil
}
