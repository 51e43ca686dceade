//go:build !temml

package katex

import "github.com/typesetting/katex/internal/jsengine"

// variantOpts is empty in the default build; the temml build tag adds the
// Temml-specific fields.
type variantOpts struct{}

func (o *Opts) appendVariantFields(jsengine.Engine, *[]jsengine.Field) error {
	return nil
}
