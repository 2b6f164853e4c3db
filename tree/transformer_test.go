package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/rtkgraph/errors"
	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/rtk"
	"github.com/teranos/rtkgraph/rtk/resolve"
)

func mustBuild(t *testing.T, kanji []rtk.KanjiRecord, primitives []rtk.PrimitiveRecord, levels map[string]rtk.JLPTLevel) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(resolve.DefaultTables(), 0, nil)
	g, err := b.Build(kanji, primitives, levels)
	require.NoError(t, err)
	return g
}

func chainGraph(t *testing.T) *graph.Graph {
	// 唱 -> 口(primitive) plus a keyword chain alpha -> beta -> gamma -> delta
	return mustBuild(t, []rtk.KanjiRecord{
		{Character: "東", ID6: 1, Keyword6: "alpha", Components: "beta"},
		{Character: "西", ID6: 2, Keyword6: "beta", Components: "gamma"},
		{Character: "南", ID6: 3, Keyword6: "gamma", Components: "delta"},
		{Character: "北", ID6: 4, Keyword6: "delta"},
	}, []rtk.PrimitiveRecord{}, nil)
}

func TestBuildTreeDepthBound(t *testing.T) {
	tr := NewTransformer(chainGraph(t), nil)

	tree, err := tr.BuildTree("kanji_東", 2)
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Meta.TotalNodes, "depth bound cuts off delta")
	assert.Equal(t, 2, tree.Meta.MaxDepth)
	assert.Empty(t, tree.Meta.CircularReferenceIDs)

	require.Len(t, tree.Root.Children, 1)
	beta := tree.Root.Children[0]
	require.Len(t, beta.Children, 1)
	gamma := beta.Children[0]
	assert.Empty(t, gamma.Children)

	// first two levels auto-expand, deeper nodes start collapsed
	assert.True(t, tree.Root.Expanded)
	assert.True(t, beta.Expanded)
	assert.False(t, gamma.Expanded)
	assert.False(t, tree.Root.ReferersExpanded)
}

func TestBuildTreeRejectsBadRoots(t *testing.T) {
	g := mustBuild(t, []rtk.KanjiRecord{
		{Character: "口", ID6: 11, Keyword6: "mouth"},
	}, []rtk.PrimitiveRecord{
		{Path: "011-mouth.svg", Unicode: "口"},
	}, nil)
	tr := NewTransformer(g, nil)

	_, err := tr.BuildTree("kanji_無", 3)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = tr.BuildTree("primitive_mouth", 3)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestBuildTreeCycleIsPrunedOnce(t *testing.T) {
	g := mustBuild(t, []rtk.KanjiRecord{
		{Character: "桜", ID6: 1, Keyword6: "cherry", Components: "plum"},
		{Character: "梅", ID6: 2, Keyword6: "plum", Components: "cherry"},
	}, []rtk.PrimitiveRecord{}, nil)
	tr := NewTransformer(g, nil)

	tree, err := tr.BuildTree("kanji_桜", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"kanji_桜"}, tree.Meta.CircularReferenceIDs)
	assert.Equal(t, 2, tree.Meta.TotalNodes)
	require.Len(t, tree.Root.Children, 1)
	assert.Empty(t, tree.Root.Children[0].Children, "cycle back to the root is pruned")
}

func TestBuildTreeDirectSelfLoop(t *testing.T) {
	// a kanji whose mnemonic references its own keyword resolves to itself
	g := mustBuild(t, []rtk.KanjiRecord{
		{Character: "回", ID6: 1, Keyword6: "rotate", Components: "rotate"},
	}, []rtk.PrimitiveRecord{}, nil)
	tr := NewTransformer(g, nil)

	tree, err := tr.BuildTree("kanji_回", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"kanji_回"}, tree.Meta.CircularReferenceIDs)
	assert.Equal(t, 1, tree.Meta.TotalNodes)
	assert.Equal(t, 0, tree.Meta.MaxDepth)
	assert.Empty(t, tree.Root.Children, "the self-edge is pruned, not expanded")
}

func TestBuildTreeReconvergenceIsNotACycle(t *testing.T) {
	// diamond: top uses left and right, both use base
	g := mustBuild(t, []rtk.KanjiRecord{
		{Character: "頂", ID6: 1, Keyword6: "summit", Components: "fork;branch"},
		{Character: "岐", ID6: 2, Keyword6: "fork", Components: "base"},
		{Character: "枝", ID6: 3, Keyword6: "branch", Components: "base"},
		{Character: "基", ID6: 4, Keyword6: "base"},
	}, []rtk.PrimitiveRecord{}, nil)
	tr := NewTransformer(g, nil)

	tree, err := tr.BuildTree("kanji_頂", 5)
	require.NoError(t, err)

	assert.Empty(t, tree.Meta.CircularReferenceIDs)
	assert.Equal(t, 5, tree.Meta.TotalNodes, "base appears once per path")

	// the two base TreeNodes wrap the same graph node but never alias
	var bases []*TreeNode
	for _, n := range tree.AllNodes {
		if n.ID == "kanji_基" {
			bases = append(bases, n)
		}
	}
	require.Len(t, bases, 2)
	assert.NotSame(t, bases[0], bases[1])
}

func TestTreeNodePath(t *testing.T) {
	tr := NewTransformer(chainGraph(t), nil)
	tree, err := tr.BuildTree("kanji_東", 3)
	require.NoError(t, err)

	leaf := tree.Root.Children[0].Children[0].Children[0]
	assert.Equal(t, []string{"kanji_東", "kanji_西", "kanji_南", "kanji_北"}, leaf.Path())
}

func TestSiblingOrdering(t *testing.T) {
	// children carry levels N3, N5, absent, N1; expected order is ascending
	// difficulty with absent last
	g := mustBuild(t, []rtk.KanjiRecord{
		{Character: "親", ID6: 1, Keyword6: "parent", Components: "w;x;y;z"},
		{Character: "三", ID6: 2, Keyword6: "w"},
		{Character: "五", ID6: 3, Keyword6: "x"},
		{Character: "無", ID6: 4, Keyword6: "y"},
		{Character: "一", ID6: 5, Keyword6: "z"},
	}, []rtk.PrimitiveRecord{}, map[string]rtk.JLPTLevel{
		"三": rtk.JLPTN3,
		"五": rtk.JLPTN5,
		"一": rtk.JLPTN1,
	})
	tr := NewTransformer(g, nil)

	tree, err := tr.BuildTree("kanji_親", 1)
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 4)

	var order []rtk.JLPTLevel
	for _, c := range tree.Root.Children {
		order = append(order, c.Node.JLPT)
	}
	assert.Equal(t, []rtk.JLPTLevel{rtk.JLPTN5, rtk.JLPTN3, rtk.JLPTN1, ""}, order)
}

// refererFixture builds a graph where 口's primitive form is referenced by n
// distinct kanji.
func refererFixture(t *testing.T, n int) *graph.Graph {
	t.Helper()
	kanji := make([]rtk.KanjiRecord, 0, n)
	for i := 0; i < n; i++ {
		kanji = append(kanji, rtk.KanjiRecord{
			Character:  string(rune(0x4E01 + i)),
			ID6:        i + 1,
			Keyword6:   fmt.Sprintf("keyword %02d", i),
			Components: "mouth",
		})
	}
	return mustBuild(t, kanji, []rtk.PrimitiveRecord{
		{Path: "011-mouth.svg", Unicode: "口"},
	}, nil)
}

func TestBuildReferersPagination(t *testing.T) {
	tr := NewTransformer(refererFixture(t, 15), nil)

	page, err := tr.BuildReferers("primitive_mouth", 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 11, "10 referers plus one placeholder")

	for _, n := range page[:10] {
		assert.False(t, n.IsPlaceholder())
		assert.Equal(t, -1, n.Depth)
	}

	more := page[10]
	require.True(t, more.IsPlaceholder())
	assert.Nil(t, more.Node)
	assert.Equal(t, "primitive_mouth_more_referers", more.ID)
	assert.Equal(t, "+5 more", more.Label)
	assert.Equal(t, "primitive_mouth", more.More.OwnerID)
	assert.Equal(t, 15, more.More.Total)
	assert.Equal(t, 10, more.More.NextOffset)

	rest, err := tr.BuildReferers("primitive_mouth", 5, more.More.NextOffset)
	require.NoError(t, err)
	require.Len(t, rest, 5, "final page has no placeholder")
	for _, n := range rest {
		assert.False(t, n.IsPlaceholder())
	}
}

func TestBuildReferersPagesNeverOverlap(t *testing.T) {
	tr := NewTransformer(refererFixture(t, 7), nil)

	first, err := tr.BuildReferers("primitive_mouth", 3, 0)
	require.NoError(t, err)
	second, err := tr.BuildReferers("primitive_mouth", 3, 3)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, n := range append(first, second...) {
		if n.IsPlaceholder() {
			continue
		}
		assert.False(t, seen[n.ID], "id %s appeared twice", n.ID)
		seen[n.ID] = true
	}

	// subsequent-page placeholder carries the offset in its id
	require.True(t, second[len(second)-1].IsPlaceholder())
	assert.Equal(t, "primitive_mouth_more_referers_6", second[len(second)-1].ID)
}

func TestBuildReferersEdgeCases(t *testing.T) {
	tr := NewTransformer(refererFixture(t, 3), nil)

	page, err := tr.BuildReferers("primitive_mouth", 10, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3, "short list needs no placeholder")

	page, err = tr.BuildReferers("primitive_mouth", 10, 99)
	require.NoError(t, err)
	assert.Empty(t, page, "offset past the end yields an empty page")

	_, err = tr.BuildReferers("primitive_mouth", 0, 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = tr.BuildReferers("primitive_mouth", 10, -1)
	require.Error(t, err)

	_, err = tr.BuildReferers("primitive_無", 10, 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBuildReferersDeterministicPlaceholder(t *testing.T) {
	tr := NewTransformer(refererFixture(t, 15), nil)

	a, err := tr.BuildReferers("primitive_mouth", 10, 0)
	require.NoError(t, err)
	b, err := tr.BuildReferers("primitive_mouth", 10, 0)
	require.NoError(t, err)

	require.Len(t, a, len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestSplicePage(t *testing.T) {
	tr := NewTransformer(refererFixture(t, 15), nil)

	first, err := tr.BuildReferers("primitive_mouth", 10, 0)
	require.NoError(t, err)
	more := first[len(first)-1].More
	require.NotNil(t, more)

	rest, err := tr.BuildReferers("primitive_mouth", 10, more.NextOffset)
	require.NoError(t, err)

	full := SplicePage(first, rest)
	assert.Len(t, full, 15)
	for _, n := range full {
		assert.False(t, n.IsPlaceholder())
	}

	// no trailing placeholder: splice is a no-op
	again := SplicePage(full, rest)
	assert.Len(t, again, 15)
}
