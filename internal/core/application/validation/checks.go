package validation

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// RequireText fails unless field holds a non-empty string. message is the human
// readable reason reported for a missing value.
func RequireText(field, message string) Check {
	return func(p Payload) error {
		v, ok := p.Lookup(field)
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause(field, errors.New(message))
		}
		s, isString := v.(string)
		if !isString {
			return errs.NewValueHasInvalidTypeErrorWithCause(field, "text", errors.New(message))
		}
		if s == "" {
			return errs.NewValueIsRequiredErrorWithCause(field, errors.New(message))
		}
		return nil
	}
}

// RequirePositiveInteger fails unless field holds an integer greater than zero.
func RequirePositiveInteger(field, message string) Check {
	return func(p Payload) error {
		v, ok := p.Lookup(field)
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause(field, errors.New(message))
		}
		return positiveInteger(field, v, message)
	}
}

// RequireNonEmptyList fails unless field holds a list with at least one entry.
func RequireNonEmptyList(field, message string) Check {
	return func(p Payload) error {
		v, ok := p.Lookup(field)
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause(field, errors.New(message))
		}
		list, isList := v.([]any)
		if !isList {
			return errs.NewValueHasInvalidTypeErrorWithCause(field, "a list", errors.New(message))
		}
		if len(list) == 0 {
			return errs.NewValueIsInvalidErrorWithCause(field, errors.New(message))
		}
		return nil
	}
}

// EachPositiveInteger walks the objects of list field once and reports the first
// entry whose member is not an integer greater than zero. message is a format
// with a single %d verb for the entry index.
func EachPositiveInteger(field, member, message string) Check {
	return func(p Payload) error {
		v, _ := p.Lookup(field)
		list, _ := v.([]any)

		for i, entry := range list {
			name := fmt.Sprintf("%s[%d].%s", field, i, member)
			reason := fmt.Sprintf(message, i)

			obj, ok := entry.(map[string]any)
			if !ok {
				return errs.NewValueHasInvalidTypeErrorWithCause(fmt.Sprintf("%s[%d]", field, i), "an object", errors.New(reason))
			}
			value, present := Payload(obj).Lookup(member)
			if !present {
				return errs.NewValueIsRequiredErrorWithCause(name, errors.New(reason))
			}
			if err := positiveInteger(name, value, reason); err != nil {
				return err
			}
		}
		return nil
	}
}

// OptionalText fails when field is present but not a string.
func OptionalText(field string) Check {
	return func(p Payload) error {
		v, ok := p.Lookup(field)
		if !ok {
			return nil
		}
		if _, isString := v.(string); !isString {
			return errs.NewValueHasInvalidTypeError(field, "text")
		}
		return nil
	}
}

// MatchRouteID fails when the payload carries an id that differs from routeID.
// An absent, null or empty id is treated as matching.
func MatchRouteID(p Payload, routeID, resource string) error {
	v, ok := p.Lookup("id")
	if !ok {
		return nil
	}
	id, isString := v.(string)
	if !isString {
		return errs.NewValueHasInvalidTypeError("id", "text")
	}
	if id == "" || id == routeID {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"id",
		fmt.Errorf("%s id does not match route id. %s: %s, Route: %s.", resource, resource, id, routeID),
	)
}

func positiveInteger(field string, v any, message string) error {
	n, isInteger := asInteger(v)
	if !isInteger {
		return errs.NewValueHasInvalidTypeErrorWithCause(field, "an integer", errors.New(message))
	}
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(field, errors.New(message))
	}
	return nil
}
