// Package errs provides standardized error types for the order dashboard
// engine. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
// Validation errors used by value objects and constructors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//
// The operation outcome taxonomy returned by use cases:
//   - InvalidTransitionError: a lifecycle transition is not allowed from the
//     order's current status (local failure, never retried, never sent)
//   - UnauthenticatedError: no credential is present (local failure)
//   - AuthRejectedError: the remote service rejected the credential;
//     triggers session invalidation
//   - TransportError: network or server failure; the caller may retry
//   - ObjectNotFoundError: the order is unknown locally or remotely
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// Every remote failure is classified into exactly one taxonomy entry at the
// transport boundary; raw transport errors never escape the adapters.
package errs
