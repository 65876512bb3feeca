package store

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/fruitfuel/pkg/validate"
)

// NotFoundError is returned when an action names an entity that must exist
// but does not, e.g. adding a product that is not in the catalogue.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ValidationError is returned when an action payload breaks a domain rule.
// Fields carries per-field messages when the payload was a whole struct.
type ValidationError struct {
	Field  string
	Reason string
	Fields validate.Errors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return "validation failed: " + e.Fields.Error()
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PreconditionError is returned when the current state does not allow the
// action at all, e.g. choosing a membership while logged out.
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return "precondition failed: " + e.Reason + ": " + e.Err.Error()
	}
	return "precondition failed: " + e.Reason
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// ErrNoUser is the reason used whenever an action needs a logged-in user.
var ErrNoUser = &PreconditionError{Reason: "no user is logged in"}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsPrecondition(err error) bool {
	var e *PreconditionError
	return errors.As(err, &e)
}

func invalid(v any) error {
	if errs := validate.Struct(v); validate.HasErrors(errs) {
		return &ValidationError{Fields: errs}
	}
	return nil
}
