package jsengine

import (
	"unicode/utf8"

	"github.com/typesetting/katex/errors"
)

// Value is an opaque handle to a JS value owned by the engine that created
// it. A Value must never be passed to a different engine instance and must
// not outlive its engine.
type Value interface {
	engineValue()
}

// Field is one entry of an object under construction. Fields are applied in
// order; a duplicate key overwrites the earlier entry.
type Field struct {
	Key   string
	Value Value
}

// Engine is the minimal interface a JS backend must implement.
type Engine interface {
	// Eval parses and executes source text in the top-level scope and
	// returns its completion value.
	Eval(src string) (Value, error)

	// CallFunction looks up a top-level function by name and invokes it
	// with the given positional arguments. The arguments must have been
	// created by this engine and are consumed by the call; they must not
	// be reused afterwards.
	CallFunction(name string, args []Value) (Value, error)

	// CreateBoolValue creates a JS boolean.
	CreateBoolValue(v bool) (Value, error)

	// CreateIntValue creates a JS number from a 32-bit integer.
	CreateIntValue(v int32) (Value, error)

	// CreateFloatValue creates a JS number, preserving IEEE-754 double
	// precision.
	CreateFloatValue(v float64) (Value, error)

	// CreateStringValue creates a JS string. The input must be valid
	// UTF-8; invalid input is a value conversion error, never a lossy
	// re-encode.
	CreateStringValue(v string) (Value, error)

	// CreateObjectValue builds a plain JS object from the given fields.
	CreateObjectValue(fields []Field) (Value, error)

	// ValueToString converts a JS string value to a Go string. Any other
	// value type is a value conversion error.
	ValueToString(v Value) (string, error)
}

// New constructs the backend selected at build time. Each call produces an
// isolated instance with no shared state, except on GOOS=js where every
// instance binds to the single ambient host runtime.
func New() (Engine, error) {
	return newEngine()
}

// Backend returns the name of the compiled-in backend.
func Backend() string {
	return backendName
}

// checkUTF8 validates string input before it crosses into the engine.
// Engines re-encode strings internally (goja and QuickJS use UTF-16 and
// CESU-8 style storage) and would silently replace invalid sequences.
func checkUTF8(s string) error {
	if !utf8.ValidString(s) {
		return errors.Value("string is not valid UTF-8")
	}
	return nil
}
