//go:build temml

package payload

import _ "embed"

var (
	//go:embed vendor/temml.min.js
	temmlSrc string

	//go:embed js/temml-entry.js
	temmlEntry string
)

// TemmlVersion of the bundled Temml build, with the same -trim convention
// as Version.
const TemmlVersion = "0.11.10-trim"

// Source returns the full bundle in load order. The temml variant carries
// both renderers: KaTeX serves every output mode except MathML-only, which
// goes through Temml.
func Source() string {
	return nodeHack + katexSrc + mhchemSrc + temmlSrc + postNodeHack + entry + temmlEntry
}
