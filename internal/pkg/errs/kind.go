package errs

import "errors"

// Kind is the coarse classification a transport maps to a response status.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindValidationFailed   Kind = "validation_failed"
	KindOperationForbidden Kind = "operation_forbidden"
	KindInternal           Kind = "internal"
)

// Category narrows a validation failure down to what was wrong with the value.
type Category string

const (
	CategoryNone         Category = ""
	CategoryMissingField Category = "missing_field"
	CategoryInvalidType  Category = "invalid_type"
	CategoryInvalidValue Category = "invalid_value"
)

// KindOf classifies err by the first sentinel found in its chain.
// Errors that carry none of the package sentinels are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrOperationIsForbidden):
		return KindOperationForbidden
	case CategoryOf(err) != CategoryNone:
		return KindValidationFailed
	default:
		return KindInternal
	}
}

// CategoryOf reports the validation category of err, or CategoryNone when err is
// not a validation failure.
func CategoryOf(err error) Category {
	switch {
	case errors.Is(err, ErrValueIsRequired):
		return CategoryMissingField
	case errors.Is(err, ErrValueHasInvalidType):
		return CategoryInvalidType
	case errors.Is(err, ErrValueIsInvalid):
		return CategoryInvalidValue
	default:
		return CategoryNone
	}
}

// Message returns the caller facing text of err: the cause of the outermost
// typed error when it has one, otherwise err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}

	var cause error
	var notFound *ObjectNotFoundError
	var required *ValueIsRequiredError
	var invalidType *ValueHasInvalidTypeError
	var invalid *ValueIsInvalidError
	var forbidden *OperationIsForbiddenError
	switch {
	case errors.As(err, &notFound):
		cause = notFound.Cause
	case errors.As(err, &forbidden):
		cause = forbidden.Cause
	case errors.As(err, &required):
		cause = required.Cause
	case errors.As(err, &invalidType):
		cause = invalidType.Cause
	case errors.As(err, &invalid):
		cause = invalid.Cause
	}
	if cause != nil {
		return cause.Error()
	}
	return err.Error()
}
