package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
// Every typed error in this package unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAuthRejected       = errors.New("credential rejected")
	ErrTransportFailure   = errors.New("transport failure")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for an out-of-range value.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a requested object does not exist, either
// locally (cache miss) or on the remote order service (HTTP 404).
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates a lifecycle transition was requested
// from a status that does not permit it. This is a local validation failure
// (typically a race between two operators) and never reaches the network.
type InvalidTransitionError struct {
	Transition string
	From       string
}

// NewInvalidTransitionError creates an error for a transition not allowed
// from the given status.
func NewInvalidTransitionError(transition, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Transition: transition, From: from}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Transition, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthenticatedError indicates an operation requiring a credential was
// attempted without one. The failure is local; no network call is made.
type UnauthenticatedError struct {
	Operation string
}

// NewUnauthenticatedError creates an error for an operation attempted
// without a credential.
func NewUnauthenticatedError(operation string) *UnauthenticatedError {
	return &UnauthenticatedError{Operation: operation}
}

func (e *UnauthenticatedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s requires a credential", ErrUnauthenticated, e.Operation))
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// AuthRejectedError indicates the remote service rejected the presented
// credential (HTTP 401/403). The session must be invalidated before retrying.
type AuthRejectedError struct {
	Operation  string
	StatusCode int
}

// NewAuthRejectedError creates an error for a credential rejected by the
// remote service.
func NewAuthRejectedError(operation string, statusCode int) *AuthRejectedError {
	return &AuthRejectedError{Operation: operation, StatusCode: statusCode}
}

func (e *AuthRejectedError) Error() string {
	return sanitize(fmt.Sprintf("%s: status %d on %s", ErrAuthRejected, e.StatusCode, e.Operation))
}

func (e *AuthRejectedError) Unwrap() error {
	return ErrAuthRejected
}

// TransportError indicates a network failure, timeout, or server-side error
// (5xx or an explicit failure body). The caller may retry; the engine never
// retries automatically and never fabricates a success in its place.
type TransportError struct {
	Operation  string
	StatusCode int
	Cause      error
}

// NewTransportError creates an error for a failed remote call identified by
// its HTTP status code.
func NewTransportError(operation string, statusCode int) *TransportError {
	return &TransportError{Operation: operation, StatusCode: statusCode}
}

// NewTransportErrorWithCause creates an error for a remote call that failed
// before an HTTP status was received (connection refused, timeout).
func NewTransportErrorWithCause(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransportFailure, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: status %d on %s", ErrTransportFailure, e.StatusCode, e.Operation))
}

func (e *TransportError) Unwrap() error {
	return ErrTransportFailure
}
