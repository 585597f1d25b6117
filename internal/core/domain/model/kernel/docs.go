// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - OrderID: the opaque backend-issued identifier of an order
//   - Page: a limit/skip descriptor of one slice of a paginated list
//
// Both follow the value-object conventions of the domain layer: private
// fields, validating constructors, an invalid zero value detectable through
// Validate, and errors from internal/pkg/errs.
package kernel
