// Package errs provides standardized error types for the restaurant service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing (category missing_field)
//   - ValueHasInvalidTypeError: a value has the wrong shape (category invalid_type)
//   - ValueIsInvalidError: a value is present but not acceptable (category invalid_value)
//   - ObjectNotFoundError: a referenced record does not exist
//   - OperationIsForbiddenError: the record exists but its state forbids the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf and CategoryOf classify any error chain so transports can map
// failures to responses without knowing the concrete types.
package errs
