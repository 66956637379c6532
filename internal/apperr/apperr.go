package apperr

import (
	"errors"
	"fmt"
)

// Entity kinds used in not-found errors. The deepest unresolved level of a
// containment path decides which kind is reported.
const (
	KindInstitution = "institution"
	KindClass       = "class"
	KindResource    = "resource"
	KindComment     = "comment"
	KindUser        = "user"
	KindFile        = "file"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// NotFoundError reports that a specific entity could not be resolved.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidIDError reports a malformed id string at the API boundary.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q", e.Value)
}

func InvalidID(value string) error {
	return &InvalidIDError{Value: value}
}

func IsInvalidID(err error) bool {
	var ie *InvalidIDError
	return errors.As(err, &ie)
}

// ValidationError reports a payload that fails entity validation rules.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
