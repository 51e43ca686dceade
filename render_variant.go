//go:build !temml

package katex

func renderFunction(*Opts) string {
	return primaryRenderFunction
}
