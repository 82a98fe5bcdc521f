package service

import (
	"errors"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/validate"
)

var (
	ErrValidation         = validate.ErrValidation
	ErrNotFound           = repo.ErrNotFound
	ErrConflict           = repo.ErrConflict
	ErrInvalidReference   = repo.ErrInvalidReference
	ErrHasDependents      = repo.ErrHasDependents
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConflictError names the unique value that is already taken.
type ConflictError struct {
	Field string
	Msg   string
}

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Unwrap() error { return ErrConflict }

func conflict(field string) *ConflictError {
	return &ConflictError{Field: field, Msg: field + " already exists"}
}
