package katex

// OptsBuilder accumulates rendering options fluently. The zero value is
// ready to use; Build returns an independent Opts.
//
//	opts := katex.NewOptsBuilder().
//		DisplayMode(true).
//		OutputType(katex.OutputHTMLAndMathML).
//		AddMacro(`\RR`, `\mathbb{R}`).
//		Build()
type OptsBuilder struct {
	opts Opts
}

// NewOptsBuilder returns an empty builder.
func NewOptsBuilder() *OptsBuilder {
	return &OptsBuilder{}
}

// DisplayMode sets whether to render the math in display mode.
func (b *OptsBuilder) DisplayMode(flag bool) *OptsBuilder {
	b.opts.SetDisplayMode(flag)
	return b
}

// OutputType sets which format(s) to emit.
func (b *OptsBuilder) OutputType(t OutputType) *OptsBuilder {
	b.opts.SetOutputType(t)
	return b
}

// Leqno sets whether to place equation tags on the left.
func (b *OptsBuilder) Leqno(flag bool) *OptsBuilder {
	b.opts.SetLeqno(flag)
	return b
}

// Fleqn sets whether display math should be left-aligned.
func (b *OptsBuilder) Fleqn(flag bool) *OptsBuilder {
	b.opts.SetFleqn(flag)
	return b
}

// ThrowOnError sets whether invalid LaTeX triggers a hard error.
func (b *OptsBuilder) ThrowOnError(flag bool) *OptsBuilder {
	b.opts.SetThrowOnError(flag)
	return b
}

// ErrorColor sets the color used for decorating invalid LaTeX segments.
func (b *OptsBuilder) ErrorColor(color string) *OptsBuilder {
	b.opts.SetErrorColor(color)
	return b
}

// Macros replaces the accumulated macro table.
func (b *OptsBuilder) Macros(macros map[string]string) *OptsBuilder {
	b.opts.macros = nil
	for name, expansion := range macros {
		b.opts.AddMacro(name, expansion)
	}
	return b
}

// AddMacro adds one macro mapping to the accumulated table. Duplicate names
// are overwritten by later calls.
func (b *OptsBuilder) AddMacro(name, expansion string) *OptsBuilder {
	b.opts.AddMacro(name, expansion)
	return b
}

// MinRuleThickness sets the minimum rule thickness in ems.
func (b *OptsBuilder) MinRuleThickness(value float64) *OptsBuilder {
	b.opts.SetMinRuleThickness(value)
	return b
}

// MaxSize sets the max size in ems for user-specified sizes.
func (b *OptsBuilder) MaxSize(value float64) *OptsBuilder {
	b.opts.SetMaxSize(value)
	return b
}

// MaxSizeUnlimited removes the user-specified size limit.
func (b *OptsBuilder) MaxSizeUnlimited() *OptsBuilder {
	b.opts.SetMaxSizeUnlimited()
	return b
}

// MaxExpand limits the number of macro expansions.
func (b *OptsBuilder) MaxExpand(limit int32) *OptsBuilder {
	b.opts.SetMaxExpand(limit)
	return b
}

// MaxExpandUnlimited removes the macro expansion limit.
func (b *OptsBuilder) MaxExpandUnlimited() *OptsBuilder {
	b.opts.SetMaxExpandUnlimited()
	return b
}

// Trust sets whether to trust the input for potentially unsafe commands.
func (b *OptsBuilder) Trust(flag bool) *OptsBuilder {
	b.opts.SetTrust(flag)
	return b
}

// Build returns the accumulated options. The builder can keep being used
// afterwards without affecting the returned Opts.
func (b *OptsBuilder) Build() *Opts {
	opts := b.opts
	if b.opts.macros != nil {
		opts.macros = make(map[string]string, len(b.opts.macros))
		for name, expansion := range b.opts.macros {
			opts.macros[name] = expansion
		}
	}
	return &opts
}
