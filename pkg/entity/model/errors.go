package model

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error is the application error carried across layers. Code decides the
// HTTP status the webhook layer responds with.
type Error struct {
	Code int
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

// NewInvalidRequestError reports an envelope with no matching tool call.
func NewInvalidRequestError() error {
	return &Error{Code: http.StatusBadRequest, err: errors.New("Invalid Request")}
}

// NewValidationError reports a missing or malformed argument field.
func NewValidationError(msg string) error {
	return &Error{Code: http.StatusBadRequest, err: errors.New(msg)}
}

// NewNotFoundError reports an absent record.
func NewNotFoundError(msg string) error {
	return &Error{Code: http.StatusNotFound, err: errors.New(msg)}
}

// NewDBError wraps a storage failure.
func NewDBError(err error) error {
	return &Error{Code: http.StatusInternalServerError, err: errors.Wrap(err, "db error")}
}

// StatusCode maps err to the HTTP status it surfaces as.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
