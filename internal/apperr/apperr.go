// Package apperr holds the error taxonomy shared by the booking core and its
// HTTP surface. Domain packages declare sentinel values with New and callers
// match them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindInternal     Kind = "internal"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, code, message string, status int) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Status: status}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message, http.StatusBadRequest)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message, http.StatusBadRequest)
}

func Forbidden(code, message string) *Error {
	return New(KindForbidden, code, message, http.StatusForbidden)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message, http.StatusNotFound)
}

func InvalidState(code, message string) *Error {
	return New(KindInvalidState, code, message, http.StatusBadRequest)
}

// WithStatus returns a copy answering with a different HTTP status. The copy
// still matches the original under errors.Is.
func (e *Error) WithStatus(status int) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Status: status, Err: e}
}

// Is matches on code so that copies made by WithStatus stay comparable.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}
