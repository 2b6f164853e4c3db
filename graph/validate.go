package graph

import (
	"sort"

	"github.com/teranos/rtkgraph/rtk"
)

// Diagnostics summarizes data-quality findings from a validated build.
// Both lists are sorted; an empty Diagnostics means a clean dataset.
// Duplicate node ids never appear here: they are structural faults that
// already fail Build itself.
type Diagnostics struct {
	// DuplicateKeywords are keywords shared by more than one node of the
	// same kind. Duplicates are legal but usually indicate sloppy source
	// data, since the keyword scan only ever reaches the first one.
	DuplicateKeywords []string
	// UnresolvedKeywords mirrors Meta.MissingMnemonics.
	UnresolvedKeywords []string
}

// Empty reports whether the validated build found nothing to flag.
func (d Diagnostics) Empty() bool {
	return len(d.DuplicateKeywords) == 0 && len(d.UnresolvedKeywords) == 0
}

// BuildValidated builds the graph and additionally sweeps the built node set
// for keywords shared by multiple nodes of the same kind, which the
// first-match keyword scan silently shadows. Unresolved tokens are carried
// over from the build. The diagnostics are advisory; the graph itself is the
// same one Build returns.
func (b *Builder) BuildValidated(kanjiRecords []rtk.KanjiRecord, primitiveRecords []rtk.PrimitiveRecord, levels map[string]rtk.JLPTLevel) (*Graph, Diagnostics, error) {
	g, err := b.Build(kanjiRecords, primitiveRecords, levels)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	diags := Diagnostics{
		UnresolvedKeywords: g.Meta.MissingMnemonics,
	}

	seen := make(map[string]int, len(g.Nodes))
	dupSet := make(map[string]struct{})
	for _, node := range g.Nodes {
		if node.Keyword == "" {
			continue
		}
		key := string(node.Kind) + "\x00" + node.Keyword
		seen[key]++
		if seen[key] > 1 {
			dupSet[node.Keyword] = struct{}{}
		}
	}
	for keyword := range dupSet {
		diags.DuplicateKeywords = append(diags.DuplicateKeywords, keyword)
	}
	sort.Strings(diags.DuplicateKeywords)

	if !diags.Empty() {
		b.log.Warnw("Graph built with data-quality findings",
			"duplicate_keywords", len(diags.DuplicateKeywords),
			"unresolved_keywords", len(diags.UnresolvedKeywords))
	}
	return g, diags, nil
}
