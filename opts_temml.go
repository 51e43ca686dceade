//go:build temml

package katex

import "github.com/typesetting/katex/internal/jsengine"

// WrapMode selects where Temml inserts soft line breaks.
// Read https://temml.org/docs/en/administration#options for more information.
type WrapMode int

const (
	// WrapTex breaks after every top-level relation and binary operator.
	WrapTex WrapMode = iota
	// WrapEquals breaks after every top-level "=" except the first.
	WrapEquals
	// WrapNone disables soft line breaks.
	WrapNone
)

func (m WrapMode) String() string {
	switch m {
	case WrapEquals:
		return "="
	case WrapNone:
		return "none"
	default:
		return "tex"
	}
}

// variantOpts holds the Temml-specific options, present only when the temml
// payload variant is compiled in.
type variantOpts struct {
	annotate *bool
	wrap     *WrapMode
	xml      *bool
}

// SetAnnotate sets whether to embed the source LaTeX as an annotation inside
// the generated MathML.
func (o *Opts) SetAnnotate(flag bool) {
	o.annotate = &flag
}

// SetWrap chooses where soft line breaks may be inserted.
func (o *Opts) SetWrap(mode WrapMode) {
	o.wrap = &mode
}

// SetXML sets whether to include an XML namespace on math elements.
func (o *Opts) SetXML(flag bool) {
	o.xml = &flag
}

// Annotate sets whether to embed the source LaTeX inside the MathML.
func (b *OptsBuilder) Annotate(flag bool) *OptsBuilder {
	b.opts.SetAnnotate(flag)
	return b
}

// Wrap chooses where soft line breaks may be inserted.
func (b *OptsBuilder) Wrap(mode WrapMode) *OptsBuilder {
	b.opts.SetWrap(mode)
	return b
}

// XML sets whether to include an XML namespace on math elements.
func (b *OptsBuilder) XML(flag bool) *OptsBuilder {
	b.opts.SetXML(flag)
	return b
}

func (o *Opts) appendVariantFields(e jsengine.Engine, fields *[]jsengine.Field) error {
	if o.annotate != nil {
		v, err := e.CreateBoolValue(*o.annotate)
		if err != nil {
			return err
		}
		*fields = append(*fields, jsengine.Field{Key: "annotate", Value: v})
	}
	if o.wrap != nil {
		v, err := e.CreateStringValue(o.wrap.String())
		if err != nil {
			return err
		}
		*fields = append(*fields, jsengine.Field{Key: "wrap", Value: v})
	}
	if o.xml != nil {
		v, err := e.CreateBoolValue(*o.xml)
		if err != nil {
			return err
		}
		*fields = append(*fields, jsengine.Field{Key: "xml", Value: v})
	}
	return nil
}
