// Package katex renders LaTeX (and a subset of TeX) math expressions into
// HTML and MathML fragments entirely in memory, without spawning external
// processes. Rendering is performed by executing the KaTeX (or, when
// requested, Temml) JavaScript bundle inside an embedded JS engine.
//
// # Quick Start
//
//	html, err := katex.Render(`E = mc^2`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// html contains a <span class="katex"> fragment
//
// Configure options with the builder:
//
//	opts := katex.NewOptsBuilder().
//	    DisplayMode(true).
//	    OutputType(katex.OutputHTMLAndMathML).
//	    Build()
//	html, err := katex.RenderWithOpts(`\frac{a}{b}`, opts)
//
// # Backends
//
// Exactly one JS execution backend is compiled in, selected by build tags:
//
//	(default)        goja - pure Go interpreter, no CGO
//	katex_quickjs    QuickJS via CGO bindings, faster evaluation
//	GOOS=js          the ambient browser/Node runtime via syscall/js
//
// Swapping backends is a recompilation; no call site changes. Selecting an
// unsupported combination fails at compile time.
//
// The temml build tag additionally bundles the Temml library: with it,
// OutputMathML rendering goes through Temml for concise semantic MathML,
// and the Temml-specific options (annotate, wrap, XML namespace) become
// available. All other output modes still use KaTeX.
//
// # Caching & Concurrency
//
// A JS engine is created lazily on first use, bootstrapped once with the
// bundle, and then reused through an internal free-list. Engines are never
// shared between concurrent calls, so Render and RenderWithOpts are safe to
// call from any number of goroutines. If the one-time bootstrap fails, the
// failure is latched and returned for every subsequent call rather than
// retried.
//
// # Error Handling
//
// All fallible APIs return a *errors.Error carrying one of three kinds:
// initialization, execution, or value conversion. KaTeX parse errors for
// invalid input surface as execution errors with the message produced by
// KaTeX. See the errors package for matching on kinds.
//
// # Security
//
// For untrusted input, prefer ThrowOnError(false) so invalid LaTeX renders
// as an error node instead of failing the call, keep Trust unset so unsafe
// constructs like \url{} are sanitized, and set MaxExpand to bound macro
// expansion. A render call cannot be cancelled once started; expansion
// limits are the only brake on pathological input.
//
// # CSS
//
// The returned string is an HTML fragment; include the KaTeX (or Temml)
// stylesheet in your page for visual layout.
package katex
