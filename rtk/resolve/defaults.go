package resolve

// Default rule data for the published Heisig datasets. These are ordinary
// inputs to NewTables, so tests and callers can substitute alternate tables
// without touching package state.

// defaultExcluded lists kanji whose keyword, when referenced in a mnemonic,
// always means the primitive form of the same shape rather than the kanji
// entry itself.
var defaultExcluded = []string{
	"口", // mouth
	"日", // day
	"月", // month
	"田", // rice field
	"目", // eye
	"人", // person
	"大", // large
	"小", // little
}

// defaultPreferKanji lists keywords (numerals, basic directionals) for which
// the kanji entry wins when a primitive shares the keyword.
var defaultPreferKanji = []string{
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
	"hundred", "thousand",
	"above", "below", "left", "right",
}

// defaultOverrides maps keywords straight to a character when the generic
// search would land on the wrong node (typically a keyword that names a
// complex kanji but is used in stories for a related primitive glyph).
var defaultOverrides = map[string]string{
	"elbow":        "厶",
	"drop":         "丶",
	"walking legs": "夂",
	"bound up":     "勹",
	"animal legs":  "ハ",
	"street":       "彳",
}

// DefaultTables returns the disambiguation rules for the published datasets.
func DefaultTables() *Tables {
	return NewTables(defaultExcluded, defaultPreferKanji, defaultOverrides)
}
