// Package resolve holds the static disambiguation tables used when a
// mnemonic keyword could name either a primitive glyph or a full kanji.
//
// The mnemonic-keyword field is prose, not a structural decomposition, so
// the same keyword can plausibly refer to several nodes; these tables record
// the cases where the generic search strategy would pick the wrong one.
package resolve

// Tables is an immutable set of disambiguation rules. Construct with
// NewTables or DefaultTables; lookups are pure and safe for concurrent use.
type Tables struct {
	excluded    map[string]bool   // kanji characters never selected via their own keyword
	preferKanji map[string]bool   // keywords where the kanji wins over a same-keyword primitive
	overrides   map[string]string // keyword -> specific character, beats everything
}

// NewTables builds a Tables from the three rule sets. Inputs are copied, so
// later mutation of the arguments does not affect lookups.
func NewTables(excluded []string, preferKanji []string, overrides map[string]string) *Tables {
	t := &Tables{
		excluded:    make(map[string]bool, len(excluded)),
		preferKanji: make(map[string]bool, len(preferKanji)),
		overrides:   make(map[string]string, len(overrides)),
	}
	for _, c := range excluded {
		t.excluded[c] = true
	}
	for _, k := range preferKanji {
		t.preferKanji[k] = true
	}
	for k, v := range overrides {
		t.overrides[k] = v
	}
	return t
}

// Resolve returns the explicitly mapped character for a keyword, if any.
func (t *Tables) Resolve(keyword string) (string, bool) {
	c, ok := t.overrides[keyword]
	return c, ok
}

// IsExcluded reports whether a kanji character must never be selected when
// its own keyword is referenced as a mnemonic (a more primitive form is
// always preferred for that keyword).
func (t *Tables) IsExcluded(character string) bool {
	return t.excluded[character]
}

// PrefersKanji reports whether a keyword should search kanji nodes before
// primitive nodes when both exist.
func (t *Tables) PrefersKanji(keyword string) bool {
	return t.preferKanji[keyword]
}

// Merge returns a new Tables with extra rules layered on top of t. Extra
// overrides win over existing ones for the same keyword.
func (t *Tables) Merge(excluded []string, preferKanji []string, overrides map[string]string) *Tables {
	merged := &Tables{
		excluded:    make(map[string]bool, len(t.excluded)+len(excluded)),
		preferKanji: make(map[string]bool, len(t.preferKanji)+len(preferKanji)),
		overrides:   make(map[string]string, len(t.overrides)+len(overrides)),
	}
	for c := range t.excluded {
		merged.excluded[c] = true
	}
	for _, c := range excluded {
		merged.excluded[c] = true
	}
	for k := range t.preferKanji {
		merged.preferKanji[k] = true
	}
	for _, k := range preferKanji {
		merged.preferKanji[k] = true
	}
	for k, v := range t.overrides {
		merged.overrides[k] = v
	}
	for k, v := range overrides {
		merged.overrides[k] = v
	}
	return merged
}
