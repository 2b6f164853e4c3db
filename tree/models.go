package tree

import (
	"fmt"

	"github.com/teranos/rtkgraph/graph"
)

// More carries the pagination metadata of a placeholder node: everything a
// renderer needs to request and splice the next referer page.
type More struct {
	OwnerID    string `json:"owner_id"`    // node whose referer list is truncated
	Total      int    `json:"total"`       // full referer count
	NextOffset int    `json:"next_offset"` // offset to pass to BuildReferers
}

// TreeNode wraps one graph node with traversal-local attributes. TreeNodes
// are created fresh per build call and never aliased: the same character at
// two tree positions is two TreeNodes.
//
// A placeholder node (More != nil) is the one variant that wraps no graph
// node; it only marks a truncated referer list.
type TreeNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Depth from the root; 0 = root, negative for referer (ascendant) nodes.
	Depth int `json:"depth"`

	// Expansion state is per-view: descendants and referers toggle
	// independently.
	Expanded         bool `json:"expanded"`
	ReferersExpanded bool `json:"referers_expanded"`

	Node     *graph.Node `json:"node,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
	Referers []*TreeNode `json:"referers,omitempty"`
	More     *More       `json:"more,omitempty"`

	// Parent is non-owning and exists only for path reconstruction.
	Parent *TreeNode `json:"-"`
}

// IsPlaceholder reports whether the node is a synthetic pagination marker.
func (n *TreeNode) IsPlaceholder() bool {
	return n.More != nil
}

// Path returns the node ids from the root down to this node.
func (n *TreeNode) Path() []string {
	var ids []string
	for cur := n; cur != nil; cur = cur.Parent {
		ids = append(ids, cur.ID)
	}
	// reverse to root-first
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// Meta summarizes a completed tree build.
type Meta struct {
	TotalNodes int `json:"total_nodes"`
	// MaxDepth is the deepest level actually reached, not the requested bound.
	MaxDepth int `json:"max_depth"`
	// CircularReferenceIDs lists, sorted and deduplicated, the node ids whose
	// expansion was pruned because they already appeared on their own descent
	// path.
	CircularReferenceIDs []string `json:"circular_reference_ids,omitempty"`
}

// Tree is the result of one BuildTree call. AllNodes is a flat view of every
// created TreeNode for statistics and lookup.
type Tree struct {
	Root     *TreeNode   `json:"root"`
	AllNodes []*TreeNode `json:"all_nodes"`
	Meta     Meta        `json:"meta"`
}

// moreLabel renders the placeholder caption, e.g. "+5 more".
func moreLabel(remaining int) string {
	return fmt.Sprintf("+%d more", remaining)
}
