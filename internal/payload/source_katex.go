//go:build !temml

package payload

// Source returns the full bundle in load order: the node-module shim, the
// KaTeX build, the mhchem extension, the shim teardown check, and the entry
// shim. Evaluated exactly once per engine.
func Source() string {
	return nodeHack + katexSrc + mhchemSrc + postNodeHack + entry
}
