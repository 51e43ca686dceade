package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindInit  Kind = "init"  // engine creation / bootstrap
	KindExec  Kind = "exec"  // evaluation and function calls
	KindValue Kind = "value" // Go <-> JS value conversion
)

// Error is the structured error type used throughout the library
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

var prefixes = map[Kind]string{
	KindInit:  "failed to initialize js environment",
	KindExec:  "failed to execute js",
	KindValue: "failed to convert js value",
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if p, ok := prefixes[e.Kind]; ok {
		b.WriteString(p)
	} else {
		b.WriteString("katex: ")
		b.WriteString(string(e.Kind))
		b.WriteString(" error")
	}

	if e.Detail != "" {
		b.WriteString(" (detail: ")
		b.WriteString(e.Detail)
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their kinds are equal, so callers can branch on the taxonomy without
// comparing detail text.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error of the given kind
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Newf creates an error of the given kind with a formatted detail message
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause. The context string
// describes the operation that failed.
func Wrap(kind Kind, cause error, context string) *Error {
	return &Error{Kind: kind, Detail: context, Cause: cause}
}

// Convenience constructors, one per kind

// Init creates an initialization error
func Init(detail string) *Error {
	return &Error{Kind: KindInit, Detail: detail}
}

// Exec creates an execution error
func Exec(detail string) *Error {
	return &Error{Kind: KindExec, Detail: detail}
}

// Value creates a value conversion error
func Value(detail string) *Error {
	return &Error{Kind: KindValue, Detail: detail}
}

// Sentinel values for use with the standard errors.Is
var (
	ErrInit  = &Error{Kind: KindInit}
	ErrExec  = &Error{Kind: KindExec}
	ErrValue = &Error{Kind: KindValue}
)
