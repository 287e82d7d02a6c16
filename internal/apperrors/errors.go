// Package apperrors defines the typed failure taxonomy shared by every
// mutating operation. Services fail fast with one of these kinds; the HTTP
// layer maps the kind to a status code and a structured error body.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure for status-code mapping.
type Kind int

const (
	// KindUnexpected is anything not otherwise classified; surfaced as a
	// genericized 500 so internals never leak.
	KindUnexpected Kind = iota
	// KindInvalid is a malformed or out-of-range request (400).
	KindInvalid
	// KindNotFound means a referenced id does not exist (404).
	KindNotFound
	// KindConflict is a uniqueness violation (409).
	KindConflict
	// KindInsufficientStock means a purchase could not be satisfied (400).
	KindInsufficientStock
	// KindForbidden means the caller lacks permission for the write (403).
	KindForbidden
)

// Error is a typed application failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Invalid builds a KindInvalid error.
func Invalid(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InsufficientStock builds a KindInsufficientStock error.
func InsufficientStock(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or KindUnexpected for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// StatusCode maps an error to the HTTP status its kind warrants.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindInvalid, KindInsufficientStock:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ApiError is the wire shape of every error response.
type ApiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path"`
}
