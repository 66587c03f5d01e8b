// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for input validation and for the order ledger:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ObjectNotFoundError: an object cannot be found
//   - TransitionNotPossibleError: no transition exists between two order event types
//   - RoleNotAuthorizedError: the acting principal may not perform a transition
//   - HistoryPreconditionFailedError: the order history forbids or lacks an event
//   - ConcurrentModificationError: another transaction modified the same order
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
//
// ClassOf maps any error produced by this package onto a coarse Class that
// transport adapters translate into their own status codes.
package errs
