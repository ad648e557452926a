// Package bridgeerr defines the closed taxonomy of error kinds a tool
// handler can surface to an MCP caller (spec §7).
package bridgeerr

import "fmt"

// Kind is one of the closed set of error categories a Tool Handler may
// report. It is never constructed from a dynamic string.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindDisconnected    Kind = "disconnected"
	KindTimeout         Kind = "timeout"
	KindExtensionError  Kind = "extension_error"
	KindNotConfigured   Kind = "not_configured"
	KindInvalidName     Kind = "invalid_name"
	KindNotFound        Kind = "not_found"
	KindNotExecutable   Kind = "not_executable"
	KindInvalidArgs     Kind = "invalid_args"
	KindExecutionFailed Kind = "execution_failed"
	KindIOError         Kind = "io_error"
	KindProtocolError   Kind = "protocol_error"
)

// Error is the concrete error type carrying a Kind, a human-readable
// message and an optional underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New builds an Error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error that wraps cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error, or returns
// "" otherwise.
func KindOf(err error) Kind {
	var be *Error
	if ok := asError(err, &be); ok {
		return be.Kind
	}
	return ""
}

func asError(err error, target **Error) bool {
	for err != nil {
		if be, ok := err.(*Error); ok {
			*target = be
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
