package katex

import (
	stderrors "errors"
	"sync"

	"go.uber.org/zap"

	"github.com/typesetting/katex/errors"
	"github.com/typesetting/katex/internal/jsengine"
	"github.com/typesetting/katex/internal/payload"
)

// Version of the bundled KaTeX build.
const Version = payload.Version

// primaryRenderFunction is the bundle's main entry point, handling every
// output mode.
const primaryRenderFunction = "katexRenderToString"

// engineCache holds bootstrapped engines on a free-list. An engine is
// checked out for the duration of one render call and checked back in
// afterwards, so no engine is ever used by two goroutines at once. The
// first failed bootstrap is latched and replayed verbatim for every later
// call: a broken build or platform does not heal by retrying.
type engineCache struct {
	boot    func() (jsengine.Engine, *errors.Error)
	mu      sync.Mutex
	idle    []jsengine.Engine
	bootErr *errors.Error
}

var cache = engineCache{boot: bootstrap}

func (c *engineCache) checkout() (jsengine.Engine, *errors.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bootErr != nil {
		return nil, c.bootErr
	}
	if n := len(c.idle); n > 0 {
		eng := c.idle[n-1]
		c.idle[n-1] = nil
		c.idle = c.idle[:n-1]
		return eng, nil
	}
	eng, err := c.boot()
	if err != nil {
		c.bootErr = err
		return nil, err
	}
	return eng, nil
}

func (c *engineCache) checkin(eng jsengine.Engine) {
	c.mu.Lock()
	c.idle = append(c.idle, eng)
	c.mu.Unlock()
}

// bootstrap constructs a backend instance and evaluates the full bundle
// exactly once. The completion value of the bundle is discarded; only the
// top-level render functions it installs matter.
func bootstrap() (jsengine.Engine, *errors.Error) {
	eng, err := jsengine.New()
	if err != nil {
		return nil, classify(err, errors.KindInit)
	}
	if _, err := eng.Eval(payload.Source()); err != nil {
		return nil, classify(err, errors.KindExec)
	}
	jsengine.Logger().Debug("typesetting engine bootstrapped",
		zap.String("backend", jsengine.Backend()),
		zap.String("katex_version", payload.Version))
	return eng, nil
}

// classify passes an already classified error through unchanged and wraps
// anything else under the fallback kind. Backends always return classified
// errors, so the fallback exists for defects, not regular operation.
func classify(err error, fallback errors.Kind) *errors.Error {
	var classified *errors.Error
	if stderrors.As(err, &classified) {
		return classified
	}
	return errors.Wrap(fallback, err, "bootstrap")
}

// Render renders a LaTeX equation to an HTML fragment with default options.
func Render(input string) (string, error) {
	return RenderWithOpts(input, nil)
}

// RenderWithOpts renders a LaTeX equation to an HTML fragment. A nil opts
// is equivalent to the zero Opts: every option left to the engine default.
//
// The first call on a fresh process pays the cost of bootstrapping the
// bundle; subsequent calls reuse cached engines and are fast.
func RenderWithOpts(input string, opts *Opts) (string, error) {
	eng, bootErr := cache.checkout()
	if bootErr != nil {
		return "", bootErr
	}
	out, err := renderOn(eng, input, opts)
	cache.checkin(eng)
	if err != nil {
		jsengine.Logger().Debug("render failed",
			zap.Int("input_len", len(input)), zap.Error(err))
		return "", err
	}
	jsengine.Logger().Debug("render complete",
		zap.Int("input_len", len(input)), zap.Int("output_len", len(out)))
	return out, nil
}

// renderOn performs one render call on a checked-out engine: input and
// options cross into the engine, the selected render function runs, and the
// result crosses back as a string. A failure at any step aborts the call;
// it does not invalidate the engine.
func renderOn(eng jsengine.Engine, input string, opts *Opts) (string, error) {
	if opts == nil {
		opts = &Opts{}
	}

	text, err := eng.CreateStringValue(input)
	if err != nil {
		return "", err
	}
	optsValue, err := opts.toEngineValue(eng)
	if err != nil {
		return "", err
	}

	result, err := eng.CallFunction(renderFunction(opts), []jsengine.Value{text, optsValue})
	if err != nil {
		return "", err
	}
	return eng.ValueToString(result)
}

// SetLogger installs a logger for engine lifecycle events. The library logs
// nothing by default. Safe to call at any time, including concurrently with
// renders.
func SetLogger(l *zap.Logger) {
	jsengine.SetLogger(l)
}
