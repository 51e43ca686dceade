//go:build katex_quickjs && !(js && wasm)

package jsengine

import (
	"github.com/buke/quickjs-go"

	"github.com/typesetting/katex/errors"
)

const backendName = "quickjs"

// qjsEngine runs the bundle on QuickJS through CGO bindings. Handles are
// reference counted on the C side, so the adapter frees every value it is
// done with: call arguments and the value passed to ValueToString are
// consumed, and Set transfers ownership of a field value into its object.
type qjsEngine struct {
	rt  *quickjs.Runtime
	ctx *quickjs.Context
}

type qjsValue struct {
	v *quickjs.Value
}

func (qjsValue) engineValue() {}

func newEngine() (eng Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.KindInit, "create quickjs runtime: %v", r)
		}
	}()
	rt := quickjs.NewRuntime()
	return &qjsEngine{rt: rt, ctx: rt.NewContext()}, nil
}

func (e *qjsEngine) Eval(src string) (Value, error) {
	result := e.ctx.Eval(src)
	if result.IsException() {
		result.Free()
		return nil, errors.Exec(e.ctx.Exception().Error())
	}
	return qjsValue{v: result}, nil
}

func (e *qjsEngine) CallFunction(name string, args []Value) (Value, error) {
	// Globals() is cached by the context and must not be freed.
	fn := e.ctx.Globals().Get(name)
	defer fn.Free()
	if !fn.IsFunction() {
		return nil, errors.Newf(errors.KindExec, "%s is not a function", name)
	}

	callArgs := make([]*quickjs.Value, 0, len(args))
	defer func() {
		for _, a := range callArgs {
			a.Free()
		}
	}()
	for _, arg := range args {
		v, err := e.unwrap(arg)
		if err != nil {
			return nil, err
		}
		callArgs = append(callArgs, v)
	}

	this := e.ctx.NewNull()
	defer this.Free()

	result := fn.Execute(this, callArgs...)
	if result.IsException() {
		result.Free()
		return nil, errors.Exec(e.ctx.Exception().Error())
	}
	return qjsValue{v: result}, nil
}

func (e *qjsEngine) CreateBoolValue(v bool) (Value, error) {
	return qjsValue{v: e.ctx.NewBool(v)}, nil
}

func (e *qjsEngine) CreateIntValue(v int32) (Value, error) {
	return qjsValue{v: e.ctx.NewInt32(v)}, nil
}

func (e *qjsEngine) CreateFloatValue(v float64) (Value, error) {
	return qjsValue{v: e.ctx.NewFloat64(v)}, nil
}

func (e *qjsEngine) CreateStringValue(v string) (Value, error) {
	if err := checkUTF8(v); err != nil {
		return nil, err
	}
	return qjsValue{v: e.ctx.NewString(v)}, nil
}

func (e *qjsEngine) CreateObjectValue(fields []Field) (Value, error) {
	obj := e.ctx.NewObject()
	for _, f := range fields {
		v, err := e.unwrap(f.Value)
		if err != nil {
			obj.Free()
			return nil, err
		}
		// Set transfers ownership of the value to the object.
		obj.Set(f.Key, v)
	}
	return qjsValue{v: obj}, nil
}

func (e *qjsEngine) ValueToString(v Value) (string, error) {
	qv, err := e.unwrap(v)
	if err != nil {
		return "", err
	}
	defer qv.Free()
	if !qv.IsString() {
		return "", errors.Value("failed to convert value to string")
	}
	return qv.String(), nil
}

func (e *qjsEngine) unwrap(v Value) (*quickjs.Value, error) {
	qv, ok := v.(qjsValue)
	if !ok {
		return nil, errors.Value("value does not belong to this engine")
	}
	return qv.v, nil
}
