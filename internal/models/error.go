package models

import (
	"net/http"
	"strings"
)

// ErrorKind classifies an AppError and decides the HTTP status it maps to
type ErrorKind string

// Error kinds
const (
	ErrNotFound   ErrorKind = "NOT_FOUND"
	ErrMalformed  ErrorKind = "MALFORMED_REQUEST"
	ErrValidation ErrorKind = "VALIDATION_FAILED"
	ErrReference  ErrorKind = "INVALID_REFERENCE"
	ErrInternal   ErrorKind = "INTERNAL_SERVER_ERROR"
)

// AppError is the error type services and controllers hand to the error middleware
type AppError struct {
	Kind     ErrorKind
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil && len(e.Messages) == 0 {
		return e.Err.Error()
	}
	return strings.Join(e.Messages, "; ")
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind
func (e *AppError) Status() int {
	switch e.Kind {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrMalformed, ErrValidation, ErrReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a 404 error with a single message
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Messages: []string{message}}
}

// NewMalformedError creates a 400 error for a request that could not be decoded
func NewMalformedError(message string, err error) *AppError {
	return &AppError{Kind: ErrMalformed, Messages: []string{message}, Err: err}
}

// NewValidationError creates a 400 error listing every failed field rule
func NewValidationError(messages ...string) *AppError {
	return &AppError{Kind: ErrValidation, Messages: messages}
}

// NewReferenceError creates a 400 error listing every foreign id that did not resolve
func NewReferenceError(messages ...string) *AppError {
	return &AppError{Kind: ErrReference, Messages: messages}
}

// NewInternalError wraps an unexpected failure. Its text is surfaced to the client.
func NewInternalError(err error) *AppError {
	return &AppError{Kind: ErrInternal, Err: err}
}

// ErrorResponse is the body of 404 and 500 responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body of 400 responses
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
