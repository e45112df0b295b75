package ndr

import (
	"fmt"

	"shipdesk/internal/pkg/errs"
)

// FailureReason classifies why a delivery attempt failed, as reported by the
// carrier.
type FailureReason int

const (
	// ReasonUnknown represents an invalid or undefined failure reason.
	ReasonUnknown FailureReason = iota

	// ReasonCustomerNotAvailable means nobody was present to receive the shipment.
	ReasonCustomerNotAvailable

	// ReasonAddressIncomplete means the shipping address is incomplete or incorrect.
	ReasonAddressIncomplete

	// ReasonPhoneUnreachable means the consignee's phone was unreachable or switched off.
	ReasonPhoneUnreachable

	// ReasonCustomerRefused means the consignee refused to accept the shipment.
	ReasonCustomerRefused

	// ReasonCODPaymentIssue means the consignee could not pay the COD amount.
	ReasonCODPaymentIssue

	// ReasonOutOfDeliveryZone means the address lies outside the serviceable area.
	ReasonOutOfDeliveryZone

	// ReasonRescheduled means the consignee asked the carrier to deliver later.
	ReasonRescheduled
)

func getReasonStrings() map[FailureReason]string {
	return map[FailureReason]string{
		ReasonCustomerNotAvailable: "Customer Not Available",
		ReasonAddressIncomplete:    "Address Incomplete / Incorrect",
		ReasonPhoneUnreachable:     "Phone Unreachable / Switched Off",
		ReasonCustomerRefused:      "Customer Refused Delivery",
		ReasonCODPaymentIssue:      "COD Payment Issue",
		ReasonOutOfDeliveryZone:    "Area Out of Delivery Zone",
		ReasonRescheduled:          "Shipment Rescheduled by Customer",
	}
}

// FailureReasonFromString parses a failure reason from its carrier-facing label.
func FailureReasonFromString(s string) (FailureReason, error) {
	for reason, label := range getReasonStrings() {
		if label == s {
			return reason, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause("failure reason",
		fmt.Errorf("%q is not a known failure reason", s))
}

// Validate checks the reason is one of the defined values.
func (r FailureReason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("failure reason",
			fmt.Errorf("%d is not a known failure reason", int(r)))
	}
	return nil
}

// String implements fmt.Stringer using the carrier-facing labels.
func (r FailureReason) String() string {
	if label, ok := getReasonStrings()[r]; ok {
		return label
	}
	return "Unknown"
}
