// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be located by identifier
//   - AccessForbiddenError: a recognized actor lacks a grant for a resource
//   - UnauthorizedError: an actor holds no permission path for an operation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting, Unwrap() returning the sentinel
//
// The boundary layer classifies errors with errors.Is against the sentinels
// and maps them to transport status codes; the core only produces typed
// values, never transport concerns.
package errs
