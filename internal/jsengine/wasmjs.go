//go:build js && wasm

package jsengine

import (
	"fmt"
	"syscall/js"

	"github.com/typesetting/katex/errors"
)

const backendName = "wasm-js"

// wasmEngine delegates to the JavaScript runtime hosting the wasm module
// (a browser or Node.js). Unlike the other backends it does not own an
// isolated interpreter: every instance binds to the single ambient global
// scope. Exceptions thrown by the host runtime surface as Go panics from
// syscall/js, so each entry point recovers and classifies them.
type wasmEngine struct {
	global js.Value
}

type wasmValue struct {
	v js.Value
}

func (wasmValue) engineValue() {}

func newEngine() (Engine, error) {
	g := js.Global()
	if g.IsUndefined() || g.IsNull() {
		return nil, errors.Init("no ambient JavaScript runtime")
	}
	return &wasmEngine{global: g}, nil
}

func (e *wasmEngine) Eval(src string) (val Value, err error) {
	defer catchException(&err, errors.KindExec)
	return wasmValue{v: e.global.Call("eval", src)}, nil
}

func (e *wasmEngine) CallFunction(name string, args []Value) (val Value, err error) {
	defer catchException(&err, errors.KindExec)

	fn := e.global.Get(name)
	if fn.Type() != js.TypeFunction {
		return nil, errors.Newf(errors.KindExec, "%s is not a function", name)
	}

	callArgs := make([]any, len(args))
	for i, arg := range args {
		v, uerr := e.unwrap(arg)
		if uerr != nil {
			return nil, uerr
		}
		callArgs[i] = v
	}

	return wasmValue{v: fn.Invoke(callArgs...)}, nil
}

func (e *wasmEngine) CreateBoolValue(v bool) (Value, error) {
	return wasmValue{v: js.ValueOf(v)}, nil
}

func (e *wasmEngine) CreateIntValue(v int32) (Value, error) {
	return wasmValue{v: js.ValueOf(int(v))}, nil
}

func (e *wasmEngine) CreateFloatValue(v float64) (Value, error) {
	return wasmValue{v: js.ValueOf(v)}, nil
}

func (e *wasmEngine) CreateStringValue(v string) (Value, error) {
	if err := checkUTF8(v); err != nil {
		return nil, err
	}
	return wasmValue{v: js.ValueOf(v)}, nil
}

func (e *wasmEngine) CreateObjectValue(fields []Field) (val Value, err error) {
	defer catchException(&err, errors.KindValue)

	obj := e.global.Get("Object").New()
	for _, f := range fields {
		v, uerr := e.unwrap(f.Value)
		if uerr != nil {
			return nil, uerr
		}
		obj.Set(f.Key, v)
	}
	return wasmValue{v: obj}, nil
}

func (e *wasmEngine) ValueToString(v Value) (string, error) {
	wv, err := e.unwrap(v)
	if err != nil {
		return "", err
	}
	if wv.Type() != js.TypeString {
		return "", errors.Value("failed to convert value to string")
	}
	return wv.String(), nil
}

func (e *wasmEngine) unwrap(v Value) (js.Value, error) {
	wv, ok := v.(wasmValue)
	if !ok {
		return js.Value{}, errors.Value("value does not belong to this engine")
	}
	return wv.v, nil
}

// catchException converts a syscall/js panic into a classified error.
func catchException(err *error, kind errors.Kind) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = errors.New(kind, jsErr.Error())
			return
		}
		*err = errors.New(kind, fmt.Sprint(r))
	}
}
