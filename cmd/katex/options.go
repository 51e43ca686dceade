package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/typesetting/katex"
)

// preset mirrors the render options as a TOML document. Pointer fields
// distinguish "absent" from a zero value so a preset only sets what it names.
type preset struct {
	DisplayMode      *bool             `toml:"display-mode"`
	Output           *string           `toml:"output"`
	Leqno            *bool             `toml:"leqno"`
	Fleqn            *bool             `toml:"fleqn"`
	ThrowOnError     *bool             `toml:"throw-on-error"`
	ErrorColor       *string           `toml:"error-color"`
	Macros           map[string]string `toml:"macros"`
	MinRuleThickness *float64          `toml:"min-rule-thickness"`
	MaxSize          *float64          `toml:"max-size"`
	MaxExpand        *int32            `toml:"max-expand"`
	Trust            *bool             `toml:"trust"`
}

// buildOpts folds preset file, macros file and command-line flags into the
// render options, in that order: later sources win. The changed predicate
// reports whether a flag was given explicitly, so untouched flags do not
// override the engine defaults or the preset.
func buildOpts(flags *renderFlags, changed func(string) bool) (*katex.Opts, error) {
	var o katex.Opts

	if flags.presetFile != "" {
		p, err := loadPreset(flags.presetFile)
		if err != nil {
			return nil, err
		}
		if err := applyPreset(&o, p); err != nil {
			return nil, err
		}
	}

	if flags.macrosFile != "" {
		macros, err := loadMacros(flags.macrosFile)
		if err != nil {
			return nil, err
		}
		for name, expansion := range macros {
			o.AddMacro(name, expansion)
		}
	}

	if changed("display") {
		o.SetDisplayMode(flags.display)
	}
	if changed("output") {
		t, err := parseOutputType(flags.output)
		if err != nil {
			return nil, err
		}
		o.SetOutputType(t)
	}
	if changed("leqno") {
		o.SetLeqno(flags.leqno)
	}
	if changed("fleqn") {
		o.SetFleqn(flags.fleqn)
	}
	if changed("throw-on-error") {
		o.SetThrowOnError(flags.throwOnError)
	}
	if changed("error-color") {
		o.SetErrorColor(flags.errorColor)
	}
	for _, def := range flags.macroDefs {
		name, expansion, ok := strings.Cut(def, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid macro definition %q: want name=expansion", def)
		}
		o.AddMacro(name, expansion)
	}
	if changed("min-rule-thickness") {
		o.SetMinRuleThickness(flags.minRuleThickness)
	}
	if changed("max-size") {
		if flags.maxSize < 0 {
			o.SetMaxSizeUnlimited()
		} else {
			o.SetMaxSize(flags.maxSize)
		}
	}
	if changed("max-expand") {
		if flags.maxExpand < 0 {
			o.SetMaxExpandUnlimited()
		} else {
			o.SetMaxExpand(flags.maxExpand)
		}
	}
	if changed("trust") {
		o.SetTrust(flags.trust)
	}

	return &o, nil
}

func applyPreset(o *katex.Opts, p *preset) error {
	if p.DisplayMode != nil {
		o.SetDisplayMode(*p.DisplayMode)
	}
	if p.Output != nil {
		t, err := parseOutputType(*p.Output)
		if err != nil {
			return err
		}
		o.SetOutputType(t)
	}
	if p.Leqno != nil {
		o.SetLeqno(*p.Leqno)
	}
	if p.Fleqn != nil {
		o.SetFleqn(*p.Fleqn)
	}
	if p.ThrowOnError != nil {
		o.SetThrowOnError(*p.ThrowOnError)
	}
	if p.ErrorColor != nil {
		o.SetErrorColor(*p.ErrorColor)
	}
	for name, expansion := range p.Macros {
		o.AddMacro(name, expansion)
	}
	if p.MinRuleThickness != nil {
		o.SetMinRuleThickness(*p.MinRuleThickness)
	}
	if p.MaxSize != nil {
		if *p.MaxSize < 0 {
			o.SetMaxSizeUnlimited()
		} else {
			o.SetMaxSize(*p.MaxSize)
		}
	}
	if p.MaxExpand != nil {
		if *p.MaxExpand < 0 {
			o.SetMaxExpandUnlimited()
		} else {
			o.SetMaxExpand(*p.MaxExpand)
		}
	}
	if p.Trust != nil {
		o.SetTrust(*p.Trust)
	}
	return nil
}

func loadPreset(path string) (*preset, error) {
	var p preset
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("load preset %s: %w", path, err)
	}
	return &p, nil
}

func loadMacros(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load macros %s: %w", path, err)
	}
	macros := make(map[string]string)
	if err := yaml.Unmarshal(data, &macros); err != nil {
		return nil, fmt.Errorf("parse macros %s: %w", path, err)
	}
	return macros, nil
}

func parseOutputType(s string) (katex.OutputType, error) {
	switch s {
	case "html":
		return katex.OutputHTML, nil
	case "mathml":
		return katex.OutputMathML, nil
	case "htmlAndMathml":
		return katex.OutputHTMLAndMathML, nil
	default:
		return 0, fmt.Errorf("unknown output type %q: want html, mathml or htmlAndMathml", s)
	}
}
