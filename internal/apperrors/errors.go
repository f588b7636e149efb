package apperrors

import "errors"

// Code is the machine-readable error classification surfaced to API clients
// in the GraphQL error extensions.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeBadUserInput    Code = "BAD_USER_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeForbidden       Code = "FORBIDDEN"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// Error is an operation-level failure. Every failure is terminal for the
// operation that produced it; there is no retry layer.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions reports the error code to the GraphQL layer, which includes it
// under extensions.code in the response.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

// AuthenticationRequired marks a protected operation called without a valid
// credential.
func AuthenticationRequired(msg string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: msg}
}

// Validation marks an input whose shape failed schema validation. The message
// carries every violation, not just the first.
func Validation(msg string) *Error {
	return &Error{Code: CodeBadUserInput, Message: msg}
}

// NotFound marks a missing id or slug lookup.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Conflict marks duplicate unique fields, duplicate likes/follows and
// self-follows.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Forbidden marks an ownership mismatch on a mutate or delete.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// Internal marks an unexpected server-side failure.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// IsCode reports whether err is an application error with the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
