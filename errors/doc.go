// Package errors provides the classified error types for the katex library.
//
// Every fallible operation in the library returns one of three error kinds:
//
//	KindInit  - failure creating or initializing the JS engine
//	KindExec  - failure evaluating or calling into the typesetting bundle
//	KindValue - failure converting values between Go and JS
//
// The distinction matters to callers: init failures are almost always a
// build or platform problem and retrying will not help, exec failures depend
// on the input (KaTeX parse errors surface here), and value failures usually
// indicate a bug on the host side.
//
// Construct errors with the kind constructors:
//
//	err := errors.Exec("ParseError: Undefined control sequence")
//	err := errors.Wrap(errors.KindInit, cause, "create runtime")
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Kind.
package errors
