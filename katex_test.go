package katex

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/typesetting/katex/errors"
	"github.com/typesetting/katex/internal/jsengine"
)

func TestRender_Basic(t *testing.T) {
	out, err := Render("E = mc^2")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{`class="katex"`, "katex-html", "katex-mathml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "katex-display") {
		t.Error("inline render produced display-mode markup")
	}
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(`\frac{a}{b} + \sqrt{2}`)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 3; i++ {
		out, err := Render(`\frac{a}{b} + \sqrt{2}`)
		if err != nil {
			t.Fatalf("Render #%d: %v", i+2, err)
		}
		if out != first {
			t.Fatalf("render #%d differs from the first:\n%s\n%s", i+2, out, first)
		}
	}
}

func TestRenderWithOpts_DisplayMode(t *testing.T) {
	opts := NewOptsBuilder().DisplayMode(true).Build()
	out, err := RenderWithOpts(`\sum_{i} i`, opts)
	if err != nil {
		t.Fatalf("RenderWithOpts: %v", err)
	}
	if !strings.Contains(out, "katex-display") {
		t.Errorf("display mode output missing katex-display:\n%s", out)
	}

	opts = NewOptsBuilder().DisplayMode(true).Leqno(true).Build()
	out, err = RenderWithOpts("x", opts)
	if err != nil {
		t.Fatalf("RenderWithOpts leqno: %v", err)
	}
	if !strings.Contains(out, "leqno") {
		t.Errorf("leqno output missing marker class:\n%s", out)
	}
}

func TestRenderWithOpts_OutputTypes(t *testing.T) {
	tests := []struct {
		name    string
		output  OutputType
		want    []string
		exclude []string
	}{
		{
			"html only",
			OutputHTML,
			[]string{"katex-html"},
			[]string{"katex-mathml", "<math"},
		},
		{
			"mathml only",
			OutputMathML,
			[]string{"<math"},
			[]string{"katex-html"},
		},
		{
			"both",
			OutputHTMLAndMathML,
			[]string{"katex-html", "katex-mathml", "<math"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewOptsBuilder().OutputType(tt.output).Build()
			out, err := RenderWithOpts(`\alpha + 1`, opts)
			if err != nil {
				t.Fatalf("RenderWithOpts: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, bad := range tt.exclude {
				if strings.Contains(out, bad) {
					t.Errorf("output unexpectedly contains %q:\n%s", bad, out)
				}
			}
		})
	}
}

func TestRenderWithOpts_Macros(t *testing.T) {
	input := `\RR`

	// Without the macro the control sequence is undefined.
	if _, err := Render(input); err == nil {
		t.Fatal("undefined control sequence rendered without error")
	}

	opts := NewOptsBuilder().AddMacro(`\RR`, `\mathbb{R}`).Build()
	out, err := RenderWithOpts(input, opts)
	if err != nil {
		t.Fatalf("RenderWithOpts: %v", err)
	}
	if !strings.Contains(out, "mathbb") {
		t.Errorf("macro expansion missing mathbb markup:\n%s", out)
	}
}

func TestRenderWithOpts_ParseErrorClassification(t *testing.T) {
	_, err := Render(`\notarealcommand`)
	if err == nil {
		t.Fatal("invalid input rendered without error")
	}
	if !stderrors.Is(err, errors.ErrExec) {
		t.Errorf("parse failure not classified as execution error: %v", err)
	}
	if stderrors.Is(err, errors.ErrInit) || stderrors.Is(err, errors.ErrValue) {
		t.Errorf("parse failure matched an unrelated kind: %v", err)
	}
	if !strings.Contains(err.Error(), "Undefined control sequence") {
		t.Errorf("error lost the engine message: %v", err)
	}
}

func TestRenderWithOpts_ThrowOnErrorFalse(t *testing.T) {
	opts := NewOptsBuilder().
		ThrowOnError(false).
		ErrorColor("#b22222").
		Build()
	out, err := RenderWithOpts(`\notarealcommand`, opts)
	if err != nil {
		t.Fatalf("throwOnError=false still returned an error: %v", err)
	}
	if !strings.Contains(out, "katex-error") {
		t.Errorf("output missing katex-error fragment:\n%s", out)
	}
	if !strings.Contains(out, "#b22222") {
		t.Errorf("output missing the configured error color:\n%s", out)
	}
}

func TestRenderWithOpts_MaxExpand(t *testing.T) {
	// Three chained expansions resolve to a plain atom.
	chained := NewOptsBuilder().
		AddMacro(`\a`, `\b`).
		AddMacro(`\b`, `\c`).
		AddMacro(`\c`, `x`)

	_, err := RenderWithOpts(`\a`, chained.MaxExpand(2).Build())
	if err == nil {
		t.Fatal("expansion over the limit rendered without error")
	}
	if !strings.Contains(err.Error(), "Too many expansions") {
		t.Errorf("unexpected over-limit error: %v", err)
	}

	out, err := RenderWithOpts(`\a`, chained.MaxExpandUnlimited().Build())
	if err != nil {
		t.Fatalf("unlimited expansion failed: %v", err)
	}
	if !strings.Contains(out, "x") {
		t.Errorf("chained macro did not reach its final expansion:\n%s", out)
	}
}

func TestRenderWithOpts_Trust(t *testing.T) {
	input := `\url{https://example.org}`

	out, err := Render(input)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "<a href") {
		t.Errorf("untrusted input produced a live link:\n%s", out)
	}

	out, err = RenderWithOpts(input, NewOptsBuilder().Trust(true).Build())
	if err != nil {
		t.Fatalf("RenderWithOpts: %v", err)
	}
	if !strings.Contains(out, "<a href") {
		t.Errorf("trusted input did not produce a link:\n%s", out)
	}
}

func TestRender_Concurrent(t *testing.T) {
	want, err := Render(`\int_0^1 x^2`)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				out, err := Render(`\int_0^1 x^2`)
				if err != nil {
					errs <- err
					return
				}
				if out != want {
					errs <- stderrors.New("concurrent render diverged")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestEngineCache_ReusesEngines(t *testing.T) {
	boots := 0
	c := engineCache{boot: func() (jsengine.Engine, *errors.Error) {
		boots++
		return bootstrap()
	}}

	first, err := c.checkout()
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	c.checkin(first)

	second, err := c.checkout()
	if err != nil {
		t.Fatalf("second checkout: %v", err)
	}
	if second != first {
		t.Error("checked-in engine was not reused")
	}
	if boots != 1 {
		t.Errorf("boot ran %d times, want 1", boots)
	}

	// A concurrent caller with no idle engine gets its own instance.
	third, err := c.checkout()
	if err != nil {
		t.Fatalf("third checkout: %v", err)
	}
	if third == second {
		t.Error("engine handed to two holders at once")
	}
	if boots != 2 {
		t.Errorf("boot ran %d times, want 2", boots)
	}
}

func TestEngineCache_LatchesBootstrapFailure(t *testing.T) {
	boots := 0
	c := engineCache{boot: func() (jsengine.Engine, *errors.Error) {
		boots++
		return nil, errors.Init("stack size exceeded")
	}}

	_, first := c.checkout()
	if first == nil {
		t.Fatal("failing boot returned no error")
	}
	if !stderrors.Is(first, errors.ErrInit) {
		t.Errorf("bootstrap failure not an initialization error: %v", first)
	}

	_, second := c.checkout()
	if second != first {
		t.Errorf("latched error not replayed: got %v, want %v", second, first)
	}
	if boots != 1 {
		t.Errorf("boot retried after failure: ran %d times", boots)
	}
}

func TestBootstrap_RejectsBrokenBundle(t *testing.T) {
	c := engineCache{boot: func() (jsengine.Engine, *errors.Error) {
		eng, err := jsengine.New()
		if err != nil {
			return nil, classify(err, errors.KindInit)
		}
		if _, err := eng.Eval(`throw new Error("corrupted bundle")`); err != nil {
			return nil, classify(err, errors.KindExec)
		}
		return eng, nil
	}}

	_, err := c.checkout()
	if err == nil {
		t.Fatal("broken bundle bootstrapped without error")
	}
	if !stderrors.Is(err, errors.ErrExec) {
		t.Errorf("broken bundle not an execution error: %v", err)
	}
}
