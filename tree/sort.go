package tree

import "sort"

// jlptSortRank orders nodes by level difficulty for sibling sorting. Present
// levels rank ascending from N5; absent levels sort after every present one.
func jlptSortRank(n *TreeNode) int {
	if n.Node == nil {
		return 0
	}
	if r := n.Node.JLPT.Rank(); r > 0 {
		return r
	}
	return 0
}

// sortSiblings orders a sibling slice in place: placeholders always last,
// then ascending JLPT difficulty with absent levels after present ones, ties
// broken by character then keyword. The sort is stable so equal nodes keep
// input order.
func sortSiblings(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]

		if a.IsPlaceholder() != b.IsPlaceholder() {
			return !a.IsPlaceholder()
		}
		if a.IsPlaceholder() {
			return false
		}

		ra, rb := jlptSortRank(a), jlptSortRank(b)
		// rank 0 means no level; it loses to any present level
		if (ra == 0) != (rb == 0) {
			return rb == 0
		}
		if ra != rb {
			return ra < rb
		}

		if a.Node.Character != b.Node.Character {
			return a.Node.Character < b.Node.Character
		}
		return a.Node.Keyword < b.Node.Keyword
	})
}
