package ndr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

// IncidentStatus is the resolution state of a non-delivery incident.
type IncidentStatus int

const (
	// StatusUnknown represents an invalid or undefined incident status.
	StatusUnknown IncidentStatus = iota

	// StatusOpen means the incident is awaiting a merchant resolution action.
	StatusOpen

	// StatusResolved means the merchant chose to keep the shipment in flight.
	StatusResolved

	// StatusRTOInitiated means the merchant returned the shipment to origin.
	StatusRTOInitiated
)

func getIncidentStatusStrings() map[IncidentStatus]string {
	return map[IncidentStatus]string{
		StatusOpen:         "Open",
		StatusResolved:     "Resolved",
		StatusRTOInitiated: "RTO Initiated",
	}
}

// IncidentStatusFromString parses an incident status from its display label.
func IncidentStatusFromString(s string) (IncidentStatus, error) {
	for status, label := range getIncidentStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("incident status",
		fmt.Errorf("%q is not a known incident status", s))
}

// Validate checks the status is one of the defined values.
func (s IncidentStatus) Validate() error {
	if _, ok := getIncidentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("incident status",
			fmt.Errorf("%d is not a known incident status", int(s)))
	}
	return nil
}

// String implements fmt.Stringer using the display labels.
func (s IncidentStatus) String() string {
	if label, ok := getIncidentStatusStrings()[s]; ok {
		return label
	}
	return "Unknown"
}

// ResolutionAction is the merchant's answer to an open incident.
type ResolutionAction int

const (
	// ActionUnknown represents an invalid or undefined resolution action.
	ActionUnknown ResolutionAction = iota

	// ActionReattempt asks the carrier to try delivering again.
	ActionReattempt

	// ActionUpdateContact fixes the consignee's address or phone and asks the
	// carrier to try again.
	ActionUpdateContact

	// ActionInitiateRTO gives up on delivery and returns the shipment to origin.
	ActionInitiateRTO
)

func getResolutionActionStrings() map[ResolutionAction]string {
	return map[ResolutionAction]string{
		ActionReattempt:     "reattempt",
		ActionUpdateContact: "update_contact",
		ActionInitiateRTO:   "initiate_rto",
	}
}

// ResolutionActionFromString parses a resolution action from its wire label.
func ResolutionActionFromString(s string) (ResolutionAction, error) {
	for action, label := range getResolutionActionStrings() {
		if label == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("resolution action",
		fmt.Errorf("%q is not a known resolution action", s))
}

// Validate checks the action is one of the defined values.
func (a ResolutionAction) Validate() error {
	if _, ok := getResolutionActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("resolution action",
			fmt.Errorf("%d is not a known resolution action", int(a)))
	}
	return nil
}

// String implements fmt.Stringer using the wire labels.
func (a ResolutionAction) String() string {
	if label, ok := getResolutionActionStrings()[a]; ok {
		return label
	}
	return "unknown"
}

var (
	// ErrIncidentIsNotConstructed is returned when an Incident instance was not
	// created through the NewIncident or RestoreIncident factory methods.
	ErrIncidentIsNotConstructed = errors.New("Incident must be created via NewIncident or RestoreIncident")

	// ErrIncidentAlreadyClosed is the sentinel error for resolution attempts
	// against incidents that are no longer open.
	ErrIncidentAlreadyClosed = errors.New("incident is already closed")
)

// IncidentAlreadyClosedError reports a rejected action against a closed
// incident together with its current status.
type IncidentAlreadyClosedError struct {
	IncidentID kernel.UUID
	Status     IncidentStatus
}

// Error formats the rejected action with the incident id and its status.
func (e *IncidentAlreadyClosedError) Error() string {
	return fmt.Sprintf("%s: incident %s is %s",
		ErrIncidentAlreadyClosed, e.IncidentID, e.Status)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *IncidentAlreadyClosedError) Unwrap() error {
	return ErrIncidentAlreadyClosed
}

// Incident is the aggregate tracking failed delivery attempts for one order.
//
// Incident follows these invariants:
//   - At most one open incident exists per order; the application layer
//     registers repeat attempts on the existing open one
//   - Attempts only grow, and only while the incident is open
//   - A closed incident is immutable; resolving it again fails with
//     IncidentAlreadyClosedError
type Incident struct {
	id            kernel.UUID
	orderRef      string
	reason        FailureReason
	attempts      int
	status        IncidentStatus
	createdAt     time.Time
	lastAttemptAt time.Time
	resolvedAt    *time.Time

	isConstructed bool
}

// NewIncident opens an incident for the first failed attempt against an order.
func NewIncident(id kernel.UUID, orderRef string, reason FailureReason, now time.Time) (*Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderRef) == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}
	if err := reason.Validate(); err != nil {
		return nil, err
	}

	return &Incident{
		id:            id,
		orderRef:      orderRef,
		reason:        reason,
		attempts:      1,
		status:        StatusOpen,
		createdAt:     now,
		lastAttemptAt: now,
		isConstructed: true,
	}, nil
}

// RestoreIncident reconstructs an Incident from persistence.
func RestoreIncident(
	id kernel.UUID,
	orderRef string,
	reason FailureReason,
	attempts int,
	status IncidentStatus,
	createdAt time.Time,
	lastAttemptAt time.Time,
	resolvedAt *time.Time,
) (*Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderRef) == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}
	if err := reason.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("attempts",
			fmt.Errorf("%d is less than 1", attempts))
	}

	return &Incident{
		id:            id,
		orderRef:      orderRef,
		reason:        reason,
		attempts:      attempts,
		status:        status,
		createdAt:     createdAt,
		lastAttemptAt: lastAttemptAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Incident instance was properly constructed.
func (i *Incident) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIncidentIsNotConstructed
	}
	return nil
}

// ID returns the incident id.
func (i *Incident) ID() kernel.UUID { return i.id }

// OrderRef returns the reference of the order the incident tracks.
func (i *Incident) OrderRef() string { return i.orderRef }

// Reason returns the most recently reported failure reason.
func (i *Incident) Reason() FailureReason { return i.reason }

// Attempts returns how many failed delivery attempts were reported.
func (i *Incident) Attempts() int { return i.attempts }

// Status returns the incident resolution state.
func (i *Incident) Status() IncidentStatus { return i.status }

// CreatedAt returns when the first failed attempt was reported.
func (i *Incident) CreatedAt() time.Time { return i.createdAt }

// LastAttemptAt returns when the latest failed attempt was reported.
func (i *Incident) LastAttemptAt() time.Time { return i.lastAttemptAt }

// ResolvedAt returns when the incident was closed, nil while it is open.
func (i *Incident) ResolvedAt() *time.Time { return i.resolvedAt }

// IsOpen reports whether the incident still awaits a resolution action.
func (i *Incident) IsOpen() bool { return i.status == StatusOpen }

// RegisterAttempt records one more failed delivery attempt on an open
// incident, updating the reason and the last-attempt timestamp.
func (i *Incident) RegisterAttempt(reason FailureReason, now time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := reason.Validate(); err != nil {
		return err
	}
	if !i.IsOpen() {
		return &IncidentAlreadyClosedError{IncidentID: i.id, Status: i.status}
	}

	i.attempts++
	i.reason = reason
	i.lastAttemptAt = now
	return nil
}

// Resolve closes an open incident with the given action and reports whether
// the order must be returned to origin. The caller is responsible for
// performing the order transition when returnToOrigin is true.
func (i *Incident) Resolve(action ResolutionAction, now time.Time) (returnToOrigin bool, err error) {
	if err := i.Validate(); err != nil {
		return false, err
	}
	if err := action.Validate(); err != nil {
		return false, err
	}
	if !i.IsOpen() {
		return false, &IncidentAlreadyClosedError{IncidentID: i.id, Status: i.status}
	}

	switch action {
	case ActionInitiateRTO:
		i.status = StatusRTOInitiated
	default:
		i.status = StatusResolved
	}
	i.resolvedAt = &now
	return i.status == StatusRTOInitiated, nil
}
