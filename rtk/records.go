// Package rtk defines the core record types for the Remembering the Kanji
// (RTK) datasets: one row per kanji and one row per mnemonic primitive.
//
// Records are plain data produced by rtk/parser and consumed by the graph
// builder; they carry no behavior beyond derived accessors.
package rtk

import (
	"path"
	"regexp"
	"strings"
)

// KanjiRecord is one parsed row of the kanji dataset.
//
// The dataset carries two editions of Heisig's book side by side; the 6th
// edition takes precedence wherever both are present. Numeric fields use 0
// as "unset" (frame numbers start at 1).
type KanjiRecord struct {
	Character  string // required
	ID5        int    // 5th-edition frame number, 0 = unset
	ID6        int    // 6th-edition frame number, 0 = unset
	Keyword5   string // 5th-edition keyword
	Keyword6   string // 6th-edition keyword
	Components string // semicolon-delimited mnemonic keyword references (prose, not decomposition)
	OnReading  string
	KunReading string
}

// Keyword returns the preferred keyword: 6th edition if present, else 5th.
func (r KanjiRecord) Keyword() string {
	if r.Keyword6 != "" {
		return r.Keyword6
	}
	return r.Keyword5
}

// FrameNumber returns the preferred RTK frame number: 6th edition if present,
// else 5th. 0 means neither edition assigns one.
func (r KanjiRecord) FrameNumber() int {
	if r.ID6 != 0 {
		return r.ID6
	}
	return r.ID5
}

// ComponentKeywords splits the semicolon-delimited mnemonic field into
// trimmed tokens, dropping empties.
func (r KanjiRecord) ComponentKeywords() []string {
	if r.Components == "" {
		return nil
	}
	var tokens []string
	for _, raw := range strings.Split(r.Components, ";") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// PrimitiveRecord is one parsed row of the primitives dataset.
//
// The asset path is the record key: its filename encodes a numeric ordering
// prefix and the primitive's display name.
type PrimitiveRecord struct {
	Path        string // required, e.g. "primitives/064-rice-field.svg"
	ParentFrame int    // frame number of the owning kanji, 0 = unset
	NextFrame   int    // frame number of the next lesson entry, 0 = unset
	Unicode     string // explicit codepoint character, "" = unset
	RealHeisig  bool   // true when the primitive appears in Heisig's book
}

// Matches a numeric ordering prefix, optionally edition-tagged
// ("064-", "12.", "6e-", "6e_").
var assetPrefixRe = regexp.MustCompile(`^[0-9]+e?[-_. ]+`)

// CleanKeyword extracts the display keyword from the asset path: directory
// and extension are stripped, the numeric/edition prefix is removed, and
// filename separators become spaces.
//
//	"primitives/064-rice-field.svg" -> "rice field"
func (r PrimitiveRecord) CleanKeyword() string {
	base := path.Base(r.Path)
	base = strings.TrimSuffix(base, path.Ext(base))
	for {
		stripped := assetPrefixRe.ReplaceAllString(base, "")
		if stripped == base {
			break
		}
		base = stripped
	}
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(base), " "))
}

// DisplayCharacter returns the glyph used for this primitive in node
// construction: the explicit Unicode codepoint if the dataset provides one,
// otherwise the cleaned keyword stands in.
func (r PrimitiveRecord) DisplayCharacter() string {
	if r.Unicode != "" {
		return r.Unicode
	}
	return r.CleanKeyword()
}
