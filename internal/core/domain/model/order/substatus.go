package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// PaymentStatus is the payment sub-state of an order. It mirrors the payment
// provider's intent states and evolves independently of the lifecycle
// status: a pending order may already be paid, a finished one may be
// refunded. No lifecycle transition reads or writes it.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentProcessing
	PaymentSucceeded
	PaymentFailed
	PaymentCanceled
	PaymentRequiresAction
	PaymentRequiresPaymentMethod
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as invalid
	return map[PaymentStatus]string{
		PaymentPending:               "pending",
		PaymentProcessing:            "processing",
		PaymentSucceeded:             "succeeded",
		PaymentFailed:                "failed",
		PaymentCanceled:              "canceled",
		PaymentRequiresAction:        "requires_action",
		PaymentRequiresPaymentMethod: "requires_payment_method",
		PaymentRefunded:              "refunded",
	}
}

// ParsePaymentStatus converts a wire string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a known payment status", s))
}

// Validate checks if the PaymentStatus is a member of the closed set.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// UploadStatus is the artwork-upload sub-state of an order, independent of
// both the lifecycle status and the payment status.
type UploadStatus int

const (
	UploadUnknown UploadStatus = iota
	UploadPending
	UploadUploaded
	UploadFailed
)

func getUploadStatusStrings() map[UploadStatus]string {
	//nolint:exhaustive // UploadUnknown is intentionally excluded as invalid
	return map[UploadStatus]string{
		UploadPending:  "pending",
		UploadUploaded: "uploaded",
		UploadFailed:   "failed",
	}
}

// ParseUploadStatus converts a wire string into an UploadStatus.
func ParseUploadStatus(s string) (UploadStatus, error) {
	for status, str := range getUploadStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UploadUnknown, errs.NewValueIsInvalidErrorWithCause("uploadStatus",
		fmt.Errorf("%q is not a known upload status", s))
}

// Validate checks if the UploadStatus is a member of the closed set.
func (s UploadStatus) Validate() error {
	if _, ok := getUploadStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("uploadStatus",
			fmt.Errorf("%d is not a valid upload status", s))
	}
	return nil
}

// String returns the wire representation of the upload status.
func (s UploadStatus) String() string {
	if str, ok := getUploadStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
