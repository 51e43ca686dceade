// Package jsengine abstracts the JavaScript execution backends used to run
// the typesetting bundle.
//
// The public API of the library hides which JS engine is used. This package
// defines a small Engine interface that each backend implements so the rest
// of the code renders through a uniform surface. Only the subset of JS the
// render path needs is exposed: value creation, evaluation, calling top-level
// functions, and extracting strings.
//
// Exactly one backend is compiled in, selected by build tags:
//
//	(default)        goja, a pure Go interpreter
//	katex_quickjs    QuickJS via CGO bindings
//	GOOS=js          the ambient host runtime via syscall/js
//
// Each tagged file defines the unexported constructor, so selecting zero or
// an unsupported combination of backends fails at compile time rather than
// at run time.
//
// Values returned by an Engine are opaque and only valid with the engine
// that produced them. Engines are not safe for concurrent use; callers must
// confine an instance to one goroutine at a time.
package jsengine
