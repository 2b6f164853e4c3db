// Package sym defines canonical glyphs for rtkgraph CLI output markers.
// These symbols are stable across CLI and documentation.
package sym

// Node and edge markers.
const (
	Kanji     = "字" // a kanji node
	Primitive = "◦" // a primitive (non-kanji building block) node
	Uses      = "→" // mnemonic_uses direction
	UsedIn    = "←" // used_in_mnemonic direction
)

// Diagnostic markers.
const (
	Cycle   = "↺" // branch pruned because it revisited its own path
	More    = "…" // truncated referer page
	Missing = "∅" // keyword with no matching node
)

// Glyphs lists every symbol for registry-style iteration.
var Glyphs = map[string]string{
	"kanji":     Kanji,
	"primitive": Primitive,
	"uses":      Uses,
	"used_in":   UsedIn,
	"cycle":     Cycle,
	"more":      More,
	"missing":   Missing,
}
