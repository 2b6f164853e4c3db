package tree

import (
	"strconv"

	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/graph"
)

// BuildReferers returns one page of the nodes whose mnemonics reference
// nodeID. The full referer list is sorted first and then sliced, so pages
// never overlap and in-page order equals the global order. When referers
// remain past the page, the slice ends with exactly one placeholder node
// whose id is deterministic for renderer keying.
func (t *Transformer) BuildReferers(nodeID string, pageSize, offset int) ([]*TreeNode, error) {
	if _, ok := t.g.NodeByID(nodeID); !ok {
		return nil, graph.NewNotFoundDataError("unknown node "+nodeID, t.g.Meta.KanjiCount, t.g.Meta.PrimitiveCount)
	}
	if pageSize <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "page size %d", pageSize)
	}
	if offset < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "offset %d", offset)
	}

	ids := t.referers[nodeID]
	all := make([]*TreeNode, 0, len(ids))
	for _, id := range ids {
		gn, ok := t.g.NodeByID(id)
		if !ok {
			continue
		}
		all = append(all, &TreeNode{
			ID:    id,
			Label: gn.Keyword,
			Depth: -1,
			Node:  gn,
		})
	}
	sortSiblings(all)

	total := len(all)
	if offset >= total {
		return []*TreeNode{}, nil
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	page := make([]*TreeNode, end-offset)
	copy(page, all[offset:end])

	if end < total {
		id := nodeID + "_more_referers"
		if offset > 0 {
			id += "_" + strconv.Itoa(end)
		}
		page = append(page, &TreeNode{
			ID:    id,
			Label: moreLabel(total - end),
			Depth: -1,
			More: &More{
				OwnerID:    nodeID,
				Total:      total,
				NextOffset: end,
			},
		})
	}
	return page, nil
}

// SplicePage replaces a trailing placeholder with the next page. The caller
// decides when to paginate; this only performs the mechanical splice. A list
// without a trailing placeholder is returned unchanged.
func SplicePage(referers, page []*TreeNode) []*TreeNode {
	if len(referers) == 0 || !referers[len(referers)-1].IsPlaceholder() {
		return referers
	}
	return append(referers[:len(referers)-1], page...)
}
