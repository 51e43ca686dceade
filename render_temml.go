//go:build temml

package katex

// mathmlRenderFunction is the Temml entry point, used only for MathML-only
// output. Every other mode falls back to the primary renderer.
const mathmlRenderFunction = "temmlRenderToString"

func renderFunction(o *Opts) string {
	if o.isMathMLOnly() {
		return mathmlRenderFunction
	}
	return primaryRenderFunction
}
