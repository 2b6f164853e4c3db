package tree

import (
	"sort"

	"go.uber.org/zap"

	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/logger"
)

// Transformer derives per-interaction tree views from a built graph. The
// graph is treated as shared read-only state; a single Transformer may serve
// any number of concurrent BuildTree/BuildReferers calls.
type Transformer struct {
	g   *graph.Graph
	log *zap.SugaredLogger

	// adjacency over mnemonic_uses edges, in edge order
	children map[string][]string // source kanji id -> component ids
	referers map[string][]string // component id -> referencing kanji ids
}

// NewTransformer indexes the graph once for repeated tree builds.
func NewTransformer(g *graph.Graph, log *zap.SugaredLogger) *Transformer {
	if log == nil {
		log = logger.Logger
	}
	t := &Transformer{
		g:        g,
		log:      log.Named("tree.transformer"),
		children: make(map[string][]string),
		referers: make(map[string][]string),
	}
	for _, e := range g.Edges {
		if e.Kind != graph.EdgeMnemonicUses {
			continue
		}
		t.children[e.Source] = append(t.children[e.Source], e.Target)
		t.referers[e.Target] = append(t.referers[e.Target], e.Source)
	}
	return t
}

// buildState accumulates per-call results during the descent.
type buildState struct {
	allNodes []*TreeNode
	maxDepth int
	circular map[string]struct{}
}

// BuildTree constructs the depth-bounded descendant tree rooted at rootID.
// The root must be a kanji node. Cycles along a single descent path are
// pruned and recorded; the same component reappearing via a sibling path is
// legal re-convergence, not a cycle.
func (t *Transformer) BuildTree(rootID string, maxDepth int) (*Tree, error) {
	root, ok := t.g.NodeByID(rootID)
	if !ok {
		return nil, graph.NewNotFoundDataError("unknown tree root "+rootID, t.g.Meta.KanjiCount, t.g.Meta.PrimitiveCount)
	}
	if root.Kind != graph.KindKanji {
		return nil, graph.NewDataError("tree root "+rootID+" is not a kanji", t.g.Meta.KanjiCount, t.g.Meta.PrimitiveCount)
	}

	state := &buildState{circular: make(map[string]struct{})}
	onPath := make(map[string]struct{})
	rootNode := t.buildNode(rootID, 0, maxDepth, nil, onPath, state)

	circular := make([]string, 0, len(state.circular))
	for id := range state.circular {
		circular = append(circular, id)
	}
	sort.Strings(circular)
	if len(circular) == 0 {
		circular = nil
	}

	result := &Tree{
		Root:     rootNode,
		AllNodes: state.allNodes,
		Meta: Meta{
			TotalNodes:           len(state.allNodes),
			MaxDepth:             state.maxDepth,
			CircularReferenceIDs: circular,
		},
	}
	t.log.Debugw("Tree built",
		"root", rootID,
		"nodes", result.Meta.TotalNodes,
		"max_depth", result.Meta.MaxDepth,
		"circular", len(circular))
	return result, nil
}

// buildNode creates one TreeNode and recurses into its components. The
// onPath set is scoped to the current descent path: the id is inserted
// before recursing and removed on backtrack.
func (t *Transformer) buildNode(id string, depth, maxDepth int, parent *TreeNode, onPath map[string]struct{}, state *buildState) *TreeNode {
	if depth > maxDepth {
		return nil
	}
	if _, revisit := onPath[id]; revisit {
		state.circular[id] = struct{}{}
		return nil
	}
	gn, ok := t.g.NodeByID(id)
	if !ok {
		return nil
	}

	node := &TreeNode{
		ID:       id,
		Label:    gn.Keyword,
		Depth:    depth,
		Expanded: depth <= 1, // first two levels open by default
		Node:     gn,
		Parent:   parent,
	}
	state.allNodes = append(state.allNodes, node)
	if depth > state.maxDepth {
		state.maxDepth = depth
	}

	onPath[id] = struct{}{}
	for _, childID := range t.children[id] {
		if child := t.buildNode(childID, depth+1, maxDepth, node, onPath, state); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	delete(onPath, id)

	sortSiblings(node.Children)
	return node
}
