//go:build temml

package katex

import "testing"

func TestOpts_VariantFieldsOnlySetAppear(t *testing.T) {
	tests := []struct {
		name string
		set  func(o *Opts)
		keys string
	}{
		{"annotate", func(o *Opts) { o.SetAnnotate(true) }, "annotate"},
		{"wrap", func(o *Opts) { o.SetWrap(WrapEquals) }, "wrap"},
		{"xml", func(o *Opts) { o.SetXML(true) }, "xml"},
		{
			"all three",
			func(o *Opts) {
				o.SetAnnotate(false)
				o.SetWrap(WrapNone)
				o.SetXML(true)
			},
			"annotate,wrap,xml",
		},
		{"none", func(*Opts) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newOptsInspector(t)
			var o Opts
			tt.set(&o)
			if keys := in.keys(&o); keys != tt.keys {
				t.Errorf("serialized keys = %q, want %q", keys, tt.keys)
			}
		})
	}
}

func TestOpts_VariantFieldValues(t *testing.T) {
	in := newOptsInspector(t)

	o := NewOptsBuilder().
		Annotate(true).
		Wrap(WrapTex).
		XML(false).
		Build()

	if got := in.field(o, "annotate"); got != "true" {
		t.Errorf("annotate = %q, want true", got)
	}
	if got := in.field(o, "wrap"); got != "tex" {
		t.Errorf("wrap = %q, want tex", got)
	}
	if got := in.field(o, "xml"); got != "false" {
		t.Errorf("xml = %q, want false", got)
	}
}

func TestWrapMode_String(t *testing.T) {
	tests := []struct {
		m    WrapMode
		want string
	}{
		{WrapTex, "tex"},
		{WrapEquals, "="},
		{WrapNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", int(tt.m), got, tt.want)
		}
	}
}
