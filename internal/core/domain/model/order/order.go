package order

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// CustomerInfo holds who placed the order. All fields come straight from the
// backend and carry no local invariants.
type CustomerInfo struct {
	Name    string
	Surname string
	Email   string
	Phone   string
	Company string
}

// DeliveryAddress is the destination for orders delivered by courier.
type DeliveryAddress struct {
	Street string
	Number string
	Code   string
	City   string
}

// DeliveryOption describes the delivery product the customer chose.
type DeliveryOption struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Time        string
}

// DeliveryInfo bundles the delivery method with its optional details.
// Address and Option are nil for pickup orders.
type DeliveryInfo struct {
	Method  string
	Address *DeliveryAddress
	Option  *DeliveryOption
}

// LineItem is one position of an order. Values carries the free-form
// configuration the customer chose (dimensions, material, ...); the engine
// passes it through untouched.
type LineItem struct {
	ID          string
	CartItemID  string
	ProductName string
	Price       float64
	BasePrice   float64
	FileURL     string
	Values      map[string]any
}

// Details groups the descriptive attributes of an order that the lifecycle
// engine carries but never interprets.
type Details struct {
	Customer        CustomerInfo
	Delivery        DeliveryInfo
	Items           []LineItem
	IsStudent       bool
	PaymentIntentID string
}

// Order represents a customer purchase record tracked through its lifecycle
// status. It is the aggregate root of the dashboard's domain model.
//
// Order follows these invariants:
//   - Must have a valid backend-issued identifier
//   - Status is always a member of the closed status set
//   - Status only changes through ApplyTransition, which enforces the
//     transition table
//   - Payment and upload sub-states are independent of the lifecycle status
//   - Can only be created through the NewOrder constructor
type Order struct {
	id          kernel.OrderID
	status      Status
	payment     PaymentStatus
	upload      UploadStatus
	total       float64
	submittedAt time.Time
	details     Details

	isConstructed bool
}

// NewOrder creates an Order from validated backend data.
//
// Parameters:
//   - id: backend-issued order identifier
//   - status: current lifecycle status (must be valid)
//   - payment: payment sub-state (must be valid)
//   - upload: upload sub-state (must be valid)
//   - total: order total, must not be negative
//   - submittedAt: submission timestamp, must not be zero
//   - details: descriptive attributes, carried as-is
//
// Returns the order or a joined validation error.
func NewOrder(
	id kernel.OrderID,
	status Status,
	payment PaymentStatus,
	upload UploadStatus,
	total float64,
	submittedAt time.Time,
	details Details,
) (*Order, error) {
	o := &Order{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setPayment(payment),
		o.setUpload(upload),
		o.setTotal(total),
		o.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Call when reconstructing orders from external data.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns a copy of the order. Applying a transition to the copy does
// not change the original; the descriptive details are shared.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

// ID returns the order's backend-issued identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment sub-state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.payment
}

// UploadStatus returns the upload sub-state of the order.
func (o *Order) UploadStatus() UploadStatus {
	return o.upload
}

// Total returns the monetary total of the order.
func (o *Order) Total() float64 {
	return o.total
}

// SubmittedAt returns the submission timestamp of the order.
func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

// Details returns the descriptive attributes of the order.
func (o *Order) Details() Details {
	return o.details
}

// ApplyTransition moves the order to the status the transition targets.
//
// The transition table is enforced: applying a transition not allowed from
// the current status returns an InvalidTransitionError and leaves the order
// unchanged. notifyDelay validates like any transition but results in the
// same status.
func (o *Order) ApplyTransition(t Transition) error {
	next, err := t.Apply(o.status)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPayment(payment PaymentStatus) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setUpload(upload UploadStatus) error {
	if err := upload.Validate(); err != nil {
		return err
	}
	o.upload = upload
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}
	o.total = total
	return nil
}

func (o *Order) setSubmittedAt(submittedAt time.Time) error {
	if submittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submittedAt")
	}
	o.submittedAt = submittedAt
	return nil
}
