//go:build !katex_quickjs && !(js && wasm)

package jsengine

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/typesetting/katex/errors"
)

const backendName = "goja"

// gojaEngine runs the bundle on goja, a pure Go interpreter. Values are
// owned by the runtime but freely usable outside any scope, so no handle
// wrapping is needed.
type gojaEngine struct {
	vm *goja.Runtime
}

type gojaValue struct {
	v goja.Value
}

func (gojaValue) engineValue() {}

func newEngine() (eng Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.KindInit, "create goja runtime: %v", r)
		}
	}()
	return &gojaEngine{vm: goja.New()}, nil
}

func (e *gojaEngine) Eval(src string) (Value, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, execError(err)
	}
	return gojaValue{v: v}, nil
}

func (e *gojaEngine) CallFunction(name string, args []Value) (Value, error) {
	target := e.vm.Get(name)
	if target == nil || goja.IsUndefined(target) {
		return nil, errors.Newf(errors.KindExec, "%s is not defined", name)
	}
	fn, ok := goja.AssertFunction(target)
	if !ok {
		return nil, errors.Newf(errors.KindExec, "%s is not a function", name)
	}

	callArgs := make([]goja.Value, len(args))
	for i, arg := range args {
		v, err := e.unwrap(arg)
		if err != nil {
			return nil, err
		}
		callArgs[i] = v
	}

	result, err := fn(goja.Undefined(), callArgs...)
	if err != nil {
		return nil, execError(err)
	}
	return gojaValue{v: result}, nil
}

func (e *gojaEngine) CreateBoolValue(v bool) (Value, error) {
	return gojaValue{v: e.vm.ToValue(v)}, nil
}

func (e *gojaEngine) CreateIntValue(v int32) (Value, error) {
	return gojaValue{v: e.vm.ToValue(v)}, nil
}

func (e *gojaEngine) CreateFloatValue(v float64) (Value, error) {
	return gojaValue{v: e.vm.ToValue(v)}, nil
}

func (e *gojaEngine) CreateStringValue(v string) (Value, error) {
	if err := checkUTF8(v); err != nil {
		return nil, err
	}
	return gojaValue{v: e.vm.ToValue(v)}, nil
}

func (e *gojaEngine) CreateObjectValue(fields []Field) (Value, error) {
	obj := e.vm.NewObject()
	for _, f := range fields {
		v, err := e.unwrap(f.Value)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(f.Key, v); err != nil {
			return nil, errors.Wrap(errors.KindValue, err, fmt.Sprintf("set object key %q", f.Key))
		}
	}
	return gojaValue{v: obj}, nil
}

func (e *gojaEngine) ValueToString(v Value) (string, error) {
	gv, err := e.unwrap(v)
	if err != nil {
		return "", err
	}
	s, ok := gv.Export().(string)
	if !ok {
		return "", errors.Value("failed to convert value to string")
	}
	return s, nil
}

func (e *gojaEngine) unwrap(v Value) (goja.Value, error) {
	gv, ok := v.(gojaValue)
	if !ok {
		return nil, errors.Value("value does not belong to this engine")
	}
	return gv.v, nil
}

// execError maps goja failures onto the classified taxonomy. goja has no
// fallible allocation path, so everything surfacing from evaluation or a
// call is an execution failure carrying the interpreter's diagnostic.
func execError(err error) *errors.Error {
	switch e := err.(type) {
	case *goja.Exception:
		return errors.Exec(e.Value().String())
	default:
		return errors.Exec(err.Error())
	}
}
