package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrReportFailedAttemptCommandIsNotConstructed = errors.New(
	"ReportFailedAttemptCommand must be created via NewReportFailedAttemptCommand constructor",
)

// ReportFailedAttemptCommand represents a carrier report of one failed
// delivery attempt against an order.
type ReportFailedAttemptCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	reason   ndr.FailureReason

	guard guard.ConstructorGuard
}

// NewReportFailedAttemptCommand creates a command to report a failed attempt.
func NewReportFailedAttemptCommand(orderRef string, reason ndr.FailureReason) (ReportFailedAttemptCommand, error) {
	if strings.TrimSpace(orderRef) == "" {
		return ReportFailedAttemptCommand{}, errs.NewValueIsRequiredError("orderRef")
	}
	if err := reason.Validate(); err != nil {
		return ReportFailedAttemptCommand{}, err
	}

	return ReportFailedAttemptCommand{
		orderRef: orderRef,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportFailedAttemptCommand) Validate() error {
	return c.guard.Validate(ErrReportFailedAttemptCommandIsNotConstructed)
}

// OrderRef returns the reference of the order that failed delivery.
func (c ReportFailedAttemptCommand) OrderRef() string { return c.orderRef }

// Reason returns the carrier-reported failure reason.
func (c ReportFailedAttemptCommand) Reason() ndr.FailureReason { return c.reason }
