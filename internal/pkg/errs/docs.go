// Package errs provides standardized error types for the delivery marketplace.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Validation errors raised by value-object and command constructors
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError).
//   - The business-rule taxonomy surfaced to callers of the lifecycle
//     operations (ObjectNotFoundError, ForbiddenError, InvalidTransitionError,
//     InvalidItemError, AlreadyReviewedError, AlreadyAssignedError).
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAlreadyAssigned)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All errors here describe client-input or business-rule violations scoped
// to one request; none is fatal to the process.
package errs
