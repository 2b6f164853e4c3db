package graph

import (
	"sort"
	"time"

	"github.com/teranos/rtkgraph/logger"
	"github.com/teranos/rtkgraph/rtk"
)

// nodeIndex holds the lookup structures the edge pass resolves against.
// The character maps are first-wins: when two records share a character the
// earlier record keeps the lookup slot, matching node creation order.
type nodeIndex struct {
	kanji      []*Node
	primitives []*Node

	byID            map[string]*Node
	kanjiByChar     map[string]*Node
	primitiveByChar map[string]*Node
}

// Build assembles the full graph from parsed records. Kanji nodes are created
// first, then primitives, both in input record order, then one edge pass
// resolves each kanji's component keywords against the finished node set.
//
// Unresolvable component keywords are not errors; they are collected into
// Meta.MissingMnemonics. Structural problems (nil inputs, id collisions)
// return a DataError.
func (b *Builder) Build(kanjiRecords []rtk.KanjiRecord, primitiveRecords []rtk.PrimitiveRecord, levels map[string]rtk.JLPTLevel) (*Graph, error) {
	if kanjiRecords == nil || primitiveRecords == nil {
		return nil, NewDataError("record sets must be non-nil", len(kanjiRecords), len(primitiveRecords))
	}

	nodes := make([]Node, 0, len(kanjiRecords)+len(primitiveRecords))
	for _, rec := range kanjiRecords {
		nodes = append(nodes, Node{
			ID:         NodeID(KindKanji, rec.Character),
			Kind:       KindKanji,
			Character:  rec.Character,
			Keyword:    rec.Keyword(),
			RTKID:      rec.FrameNumber(),
			OnReading:  rec.OnReading,
			KunReading: rec.KunReading,
			JLPT:       levels[rec.Character],
		})
	}
	for _, rec := range primitiveRecords {
		nodes = append(nodes, Node{
			ID:        NodeID(KindPrimitive, rec.CleanKeyword()),
			Kind:      KindPrimitive,
			Character: rec.DisplayCharacter(),
			Keyword:   rec.CleanKeyword(),
			RTKID:     rec.ParentFrame,
			Unicode:   rec.Unicode,
			AssetPath: rec.Path,
		})
	}

	index, err := b.indexNodes(nodes, len(kanjiRecords), len(primitiveRecords))
	if err != nil {
		return nil, err
	}

	edges, missing := b.buildEdges(kanjiRecords, index)

	g := &Graph{
		Nodes: nodes,
		Edges: edges,
		Meta: Meta{
			GeneratedAt:      time.Now().UTC(),
			KanjiCount:       len(kanjiRecords),
			PrimitiveCount:   len(primitiveRecords),
			EdgeCount:        len(edges),
			MissingMnemonics: missing,
		},
		byID: index.byID,
	}

	b.log.Infow("Graph built",
		"kanji", g.Meta.KanjiCount,
		"primitives", g.Meta.PrimitiveCount,
		"edges", g.Meta.EdgeCount,
		"missing_mnemonics", len(missing))
	return g, nil
}

// indexNodes builds the lookup maps for the edge pass. An id collision means
// two records sanitize to the same identity, which would silently merge
// unrelated entries, so it fails the build.
func (b *Builder) indexNodes(nodes []Node, kanjiCount, primitiveCount int) (*nodeIndex, error) {
	index := &nodeIndex{
		byID:            make(map[string]*Node, len(nodes)),
		kanjiByChar:     make(map[string]*Node, kanjiCount),
		primitiveByChar: make(map[string]*Node, primitiveCount),
	}
	for i := range nodes {
		node := &nodes[i]
		if _, exists := index.byID[node.ID]; exists {
			return nil, NewIntegrityError("duplicate node id "+node.ID, kanjiCount, primitiveCount)
		}
		index.byID[node.ID] = node

		switch node.Kind {
		case KindKanji:
			index.kanji = append(index.kanji, node)
			if _, taken := index.kanjiByChar[node.Character]; !taken {
				index.kanjiByChar[node.Character] = node
			}
		case KindPrimitive:
			index.primitives = append(index.primitives, node)
			if node.Character != "" {
				if _, taken := index.primitiveByChar[node.Character]; !taken {
					index.primitiveByChar[node.Character] = node
				}
			}
		}
	}
	return index, nil
}

// buildEdges resolves every kanji's component keywords and emits mirrored
// edge pairs. A per-kanji linked set deduplicates repeated references to the
// same target; the returned missing list is sorted and deduplicated.
func (b *Builder) buildEdges(kanjiRecords []rtk.KanjiRecord, index *nodeIndex) ([]Edge, []string) {
	var edges []Edge
	missingSet := make(map[string]struct{})

	for _, rec := range kanjiRecords {
		source, ok := index.kanjiByChar[rec.Character]
		if !ok {
			continue
		}
		linked := make(map[string]struct{})
		for _, token := range rec.ComponentKeywords() {
			target := b.resolveToken(token, index)
			if target == nil {
				missingSet[token] = struct{}{}
				if logger.ShouldLogTrace(b.verbosity) {
					b.log.Debugw("Unresolved mnemonic keyword",
						"kanji", rec.Character,
						"keyword", token)
				}
				continue
			}
			if _, seen := linked[target.ID]; seen {
				continue
			}
			linked[target.ID] = struct{}{}
			edges = append(edges,
				Edge{Source: source.ID, Target: target.ID, Kind: EdgeMnemonicUses},
				Edge{Source: target.ID, Target: source.ID, Kind: EdgeUsedInMnemonic},
			)
		}
	}

	missing := make([]string, 0, len(missingSet))
	for token := range missingSet {
		missing = append(missing, token)
	}
	sort.Strings(missing)
	if len(missing) == 0 {
		missing = nil
	}
	return edges, missing
}

// resolveToken maps one mnemonic keyword to a node. Resolution order:
//
//  1. explicit override to a character, looked up kanji-first; an override
//     naming an absent character falls through to the generic search
//  2. keyword scan in node creation order, kanji-first when the keyword
//     prefers kanji, primitive-first otherwise; excluded kanji are skipped
//  3. derived-id fallback for tokens that are already clean identities
//
// Returns nil when nothing matches.
func (b *Builder) resolveToken(token string, index *nodeIndex) *Node {
	if char, ok := b.tables.Resolve(token); ok {
		if node, found := index.kanjiByChar[char]; found {
			return node
		}
		if node, found := index.primitiveByChar[char]; found {
			return node
		}
	}

	if b.tables.PrefersKanji(token) {
		if node := index.scanKanji(token, b.tables.IsExcluded); node != nil {
			return node
		}
		if node := index.scanPrimitives(token); node != nil {
			return node
		}
	} else {
		if node := index.scanPrimitives(token); node != nil {
			return node
		}
		if node := index.scanKanji(token, b.tables.IsExcluded); node != nil {
			return node
		}
	}

	if node, found := index.byID[NodeID(KindKanji, token)]; found && !b.tables.IsExcluded(node.Character) {
		return node
	}
	if node, found := index.byID[NodeID(KindPrimitive, token)]; found {
		return node
	}
	return nil
}

func (idx *nodeIndex) scanKanji(keyword string, excluded func(string) bool) *Node {
	for _, node := range idx.kanji {
		if node.Keyword == keyword && !excluded(node.Character) {
			return node
		}
	}
	return nil
}

func (idx *nodeIndex) scanPrimitives(keyword string) *Node {
	for _, node := range idx.primitives {
		if node.Keyword == keyword {
			return node
		}
	}
	return nil
}
