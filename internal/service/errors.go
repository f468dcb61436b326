package service

import "net/http"

// Error is a failure with the HTTP status it maps to. Handlers render any
// service error as {err, code}; anything that is not a *Error becomes a 500.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest covers missing or malformed bodies and fields.
func BadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// Unauthorized covers missing/invalid tokens and till-membership failures.
func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// Forbidden covers duplicate unique fields and insufficient role.
func Forbidden(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Message: msg}
}

// NotFound covers absent referenced entities.
func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// Internal covers store, hashing and signing failures.
func Internal(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg}
}
