// Package payload carries the pre-built JavaScript typesetting bundle that
// the engine evaluates once at bootstrap. The bundle is opaque to the rest
// of the library: the host only relies on the entry shims exposing
// katexRenderToString (and temmlRenderToString under the temml build tag)
// in the top-level scope.
package payload

import _ "embed"

// Version of the bundled KaTeX build. The -trim suffix marks the bundle as
// a reduced build, not the full upstream release of the same number.
const Version = "0.16.21-trim"

var (
	//go:embed js/node-hack.js
	nodeHack string

	//go:embed vendor/katex.min.js
	katexSrc string

	//go:embed vendor/mhchem.min.js
	mhchemSrc string

	//go:embed js/post-node-hack.js
	postNodeHack string

	//go:embed js/entry.js
	entry string
)
