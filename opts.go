package katex

import (
	"math"
	"sort"

	"github.com/typesetting/katex/internal/jsengine"
)

// OutputType selects which markup KaTeX should produce.
type OutputType int

const (
	// OutputHTML outputs KaTeX in HTML only.
	OutputHTML OutputType = iota
	// OutputMathML outputs KaTeX in MathML only.
	OutputMathML
	// OutputHTMLAndMathML outputs HTML for visual rendering and includes
	// MathML for accessibility. This is the engine default.
	OutputHTMLAndMathML
)

func (t OutputType) String() string {
	switch t {
	case OutputHTML:
		return "html"
	case OutputMathML:
		return "mathml"
	default:
		return "htmlAndMathml"
	}
}

// Opts are the rendering options for one call. The zero value sets nothing:
// only fields explicitly set are forwarded to the engine, so the engine's
// own defaults apply to the rest. Construct directly via the setters or with
// NewOptsBuilder. Opts carry no engine resources and are safe to share
// across goroutines once built.
//
// Read https://katex.org/docs/options.html for the semantics of each field.
type Opts struct {
	displayMode      *bool
	outputType       *OutputType
	leqno            *bool
	fleqn            *bool
	throwOnError     *bool
	errorColor       *string
	macros           map[string]string
	minRuleThickness *float64
	maxSize          *float64
	maxSizeUnlimited bool
	maxExpand        *int32
	maxExpandUnlimit bool
	trust            *bool

	variantOpts
}

// SetDisplayMode sets whether to render the math in display mode.
func (o *Opts) SetDisplayMode(flag bool) {
	o.displayMode = &flag
}

// SetOutputType sets which format(s) to emit.
func (o *Opts) SetOutputType(t OutputType) {
	o.outputType = &t
}

// SetLeqno sets whether to place equation tags on the left.
func (o *Opts) SetLeqno(flag bool) {
	o.leqno = &flag
}

// SetFleqn sets whether display math should be left-aligned.
func (o *Opts) SetFleqn(flag bool) {
	o.fleqn = &flag
}

// SetThrowOnError sets whether invalid LaTeX triggers a hard error. When
// false, the engine inserts error nodes styled with the error color instead.
func (o *Opts) SetThrowOnError(flag bool) {
	o.throwOnError = &flag
}

// SetErrorColor sets the CSS color applied to invalid LaTeX segments when
// errors are not thrown.
func (o *Opts) SetErrorColor(color string) {
	o.errorColor = &color
}

// AddMacro adds a single custom macro mapping, e.g. `\RR` -> `\mathbb{R}`.
// Later entries for the same name win.
func (o *Opts) AddMacro(name, expansion string) {
	if o.macros == nil {
		o.macros = make(map[string]string)
	}
	o.macros[name] = expansion
}

// SetMinRuleThickness sets the minimum thickness, in ems, for fraction
// lines and rules.
func (o *Opts) SetMinRuleThickness(value float64) {
	o.minRuleThickness = &value
}

// SetMaxSize sets the max size, in ems, for user-specified sizes.
func (o *Opts) SetMaxSize(value float64) {
	o.maxSize = &value
	o.maxSizeUnlimited = false
}

// SetMaxSizeUnlimited removes the size limit, letting users make elements
// and spaces arbitrarily large.
func (o *Opts) SetMaxSizeUnlimited() {
	o.maxSize = nil
	o.maxSizeUnlimited = true
}

// SetMaxExpand limits the number of macro expansions. Prevents runaway
// recursion.
func (o *Opts) SetMaxExpand(limit int32) {
	o.maxExpand = &limit
	o.maxExpandUnlimit = false
}

// SetMaxExpandUnlimited removes the macro expansion limit, expanding fully
// as in LaTeX. Use with care on untrusted input.
func (o *Opts) SetMaxExpandUnlimited() {
	o.maxExpand = nil
	o.maxExpandUnlimit = true
}

// SetTrust sets whether to trust the input for potentially unsafe commands
// such as \url{} and raw HTML. Keep false for untrusted sources.
func (o *Opts) SetTrust(flag bool) {
	o.trust = &flag
}

// isMathMLOnly reports whether the output type is MathML only (allowing
// usage of Temml when compiled in).
func (o *Opts) isMathMLOnly() bool {
	return o.outputType != nil && *o.outputType == OutputMathML
}

// maxExpandSentinel is transmitted for an unlimited macro expansion
// override; it is distinct from any finite limit the setter accepts.
const maxExpandSentinel = math.MaxInt32

// toEngineValue serializes the options to an engine object value. Only
// explicitly set fields appear; an unlimited max size is expressed by
// omitting the key since the engine default is already unbounded.
func (o *Opts) toEngineValue(e jsengine.Engine) (jsengine.Value, error) {
	var fields []jsengine.Field
	add := func(key string, v jsengine.Value, err error) error {
		if err != nil {
			return err
		}
		fields = append(fields, jsengine.Field{Key: key, Value: v})
		return nil
	}

	if o.displayMode != nil {
		v, err := e.CreateBoolValue(*o.displayMode)
		if err := add("displayMode", v, err); err != nil {
			return nil, err
		}
	}
	if o.outputType != nil {
		v, err := e.CreateStringValue(o.outputType.String())
		if err := add("output", v, err); err != nil {
			return nil, err
		}
	}
	if o.leqno != nil {
		v, err := e.CreateBoolValue(*o.leqno)
		if err := add("leqno", v, err); err != nil {
			return nil, err
		}
	}
	if o.fleqn != nil {
		v, err := e.CreateBoolValue(*o.fleqn)
		if err := add("fleqn", v, err); err != nil {
			return nil, err
		}
	}
	if o.throwOnError != nil {
		v, err := e.CreateBoolValue(*o.throwOnError)
		if err := add("throwOnError", v, err); err != nil {
			return nil, err
		}
	}
	if o.errorColor != nil {
		v, err := e.CreateStringValue(*o.errorColor)
		if err := add("errorColor", v, err); err != nil {
			return nil, err
		}
	}
	if len(o.macros) > 0 {
		v, err := o.macrosValue(e)
		if err := add("macros", v, err); err != nil {
			return nil, err
		}
	}
	if o.minRuleThickness != nil {
		v, err := e.CreateFloatValue(*o.minRuleThickness)
		if err := add("minRuleThickness", v, err); err != nil {
			return nil, err
		}
	}
	if o.maxSize != nil {
		v, err := e.CreateFloatValue(*o.maxSize)
		if err := add("maxSize", v, err); err != nil {
			return nil, err
		}
	}
	if o.maxExpand != nil || o.maxExpandUnlimit {
		limit := int32(maxExpandSentinel)
		if o.maxExpand != nil {
			limit = *o.maxExpand
		}
		v, err := e.CreateIntValue(limit)
		if err := add("maxExpand", v, err); err != nil {
			return nil, err
		}
	}
	if o.trust != nil {
		v, err := e.CreateBoolValue(*o.trust)
		if err := add("trust", v, err); err != nil {
			return nil, err
		}
	}
	if err := o.appendVariantFields(e, &fields); err != nil {
		return nil, err
	}

	return e.CreateObjectValue(fields)
}

// macrosValue builds the nested macro table object. Keys are sorted so the
// serialization is deterministic regardless of map iteration order.
func (o *Opts) macrosValue(e jsengine.Engine) (jsengine.Value, error) {
	names := make([]string, 0, len(o.macros))
	for name := range o.macros {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]jsengine.Field, 0, len(names))
	for _, name := range names {
		v, err := e.CreateStringValue(o.macros[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, jsengine.Field{Key: name, Value: v})
	}
	return e.CreateObjectValue(fields)
}
