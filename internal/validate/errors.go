// Package validate holds the pure field rules for every entity. Validators
// never touch the store: uniqueness and foreign key existence belong to the
// repo layer.
package validate

import "errors"

type Reason string

const (
	MissingField  Reason = "missing_field"
	InvalidRange  Reason = "invalid_range"
	InvalidFormat Reason = "invalid_format"
)

// ErrValidation matches every *Error with errors.Is.
var ErrValidation = errors.New("validation")

type Error struct {
	Reason Reason
	Field  string
	Msg    string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *Error) Unwrap() error { return ErrValidation }

func Missing(field string) *Error {
	return &Error{Reason: MissingField, Field: field, Msg: "field is required"}
}

func OutOfRange(field, msg string) *Error {
	return &Error{Reason: InvalidRange, Field: field, Msg: msg}
}

func BadFormat(field, msg string) *Error {
	return &Error{Reason: InvalidFormat, Field: field, Msg: msg}
}

// ReasonOf reports the rejection reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
