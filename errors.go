package faqgen

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level categories
// at the edges of the system (CLI exit codes, HTTP status codes).
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EBLOCKED     = "blocked"     // response received but content indicates denial
	EEXHAUSTED   = "exhausted"   // every fetch strategy was attempted without a clean result
	ETIMEOUT     = "timeout"     // an external call exceeded its deadline
	ERATELIMIT   = "rate_limit"  // the model service is rate limiting us
	EQUOTA       = "quota"       // the model service quota is spent
	EUNAVAILABLE = "unavailable" // network-level failure, no usable response
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application-specific error. Errors can be unwrapped by
// errors.As to inspect the machine-readable Code.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description safe to show to end users.
	Message string
}

// Error implements the error interface. Not meant for end users; use
// ErrorMessage for that.
func (e *Error) Error() string {
	return fmt.Sprintf("faqgen error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
