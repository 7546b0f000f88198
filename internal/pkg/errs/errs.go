package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueHasInvalidType  = errors.New("value has invalid type")
	ErrValueIsRequired      = errors.New("value is required")
	ErrOperationIsForbidden = errors.New("operation is forbidden")
)

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value is present but violates a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return format(ErrValueIsInvalid, e.ParamName, e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueHasInvalidTypeError is returned when a value is present with the wrong shape,
// e.g. a string where an integer is expected.
type ValueHasInvalidTypeError struct {
	ParamName string
	Expected  string
	Cause     error
}

func NewValueHasInvalidTypeError(paramName, expected string) *ValueHasInvalidTypeError {
	return &ValueHasInvalidTypeError{ParamName: paramName, Expected: expected}
}

func NewValueHasInvalidTypeErrorWithCause(paramName, expected string, cause error) *ValueHasInvalidTypeError {
	return &ValueHasInvalidTypeError{ParamName: paramName, Expected: expected, Cause: cause}
}

func (e *ValueHasInvalidTypeError) Error() string {
	return format(ErrValueHasInvalidType, fmt.Sprintf("%s must be %s", e.ParamName, e.Expected), e.Cause)
}

func (e *ValueHasInvalidTypeError) Unwrap() error {
	return ErrValueHasInvalidType
}

// ValueIsRequiredError is returned when a required value is absent or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return format(ErrValueIsRequired, e.ParamName, e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// OperationIsForbiddenError is returned when the target exists but its current
// state does not allow the requested operation.
type OperationIsForbiddenError struct {
	Operation string
	Cause     error
}

func NewOperationIsForbiddenError(operation string) *OperationIsForbiddenError {
	return &OperationIsForbiddenError{Operation: operation}
}

func NewOperationIsForbiddenErrorWithCause(operation string, cause error) *OperationIsForbiddenError {
	return &OperationIsForbiddenError{Operation: operation, Cause: cause}
}

func (e *OperationIsForbiddenError) Error() string {
	return format(ErrOperationIsForbidden, e.Operation, e.Cause)
}

func (e *OperationIsForbiddenError) Unwrap() error {
	return ErrOperationIsForbidden
}

func format(sentinel error, subject string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", sentinel, subject, cause)
	}
	return fmt.Sprintf("%s: %s", sentinel, subject)
}

// sanitize keeps user supplied identifiers on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
