package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/rtkgraph/rtk"
	"github.com/teranos/rtkgraph/rtk/resolve"
)

func testKanjiRecords() []rtk.KanjiRecord {
	return []rtk.KanjiRecord{
		{Character: "一", ID6: 1, Keyword6: "one"},
		{Character: "口", ID6: 11, Keyword6: "mouth"},
		{Character: "日", ID6: 12, Keyword6: "day"},
		{Character: "唱", ID6: 21, Keyword6: "chant", Components: "mouth;day"},
		{Character: "私", ID6: 1017, Keyword6: "private", Components: "elbow;wheat"},
	}
}

func testPrimitiveRecords() []rtk.PrimitiveRecord {
	return []rtk.PrimitiveRecord{
		{Path: "001-one.svg", Unicode: "一"},
		{Path: "011-mouth.svg", Unicode: "口"},
		{Path: "012-day.svg", Unicode: "日"},
		{Path: "017-elbow.svg", Unicode: "厶"},
	}
}

func buildTestGraph(t *testing.T) *Graph {
	t.Helper()
	b := NewBuilder(resolve.DefaultTables(), 0, nil)
	g, err := b.Build(testKanjiRecords(), testPrimitiveRecords(), map[string]rtk.JLPTLevel{
		"一": rtk.JLPTN5,
		"唱": rtk.JLPTN1,
	})
	require.NoError(t, err)
	return g
}

func edgesFrom(g *Graph, sourceID string, kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == sourceID && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestBuildNodeIdentity(t *testing.T) {
	g := buildTestGraph(t)

	assert.Equal(t, 5, g.Meta.KanjiCount)
	assert.Equal(t, 4, g.Meta.PrimitiveCount)
	assert.Len(t, g.Nodes, 9)

	chant, ok := g.NodeByID("kanji_唱")
	require.True(t, ok)
	assert.Equal(t, KindKanji, chant.Kind)
	assert.Equal(t, "chant", chant.Keyword)
	assert.Equal(t, 21, chant.RTKID)
	assert.Equal(t, rtk.JLPTN1, chant.JLPT)

	mouth, ok := g.NodeByID("primitive_mouth")
	require.True(t, ok)
	assert.Equal(t, KindPrimitive, mouth.Kind)
	assert.Equal(t, "口", mouth.Character)
	assert.Equal(t, "011-mouth.svg", mouth.AssetPath)

	// Kanji and primitive sharing a shape keep distinct identities.
	_, ok = g.NodeByID("kanji_口")
	assert.True(t, ok)
}

func TestBuildMirroredEdges(t *testing.T) {
	g := buildTestGraph(t)

	uses := edgesFrom(g, "kanji_唱", EdgeMnemonicUses)
	require.Len(t, uses, 2, "chant references mouth and day")

	for _, e := range uses {
		mirrored := false
		for _, back := range g.Edges {
			if back.Source == e.Target && back.Target == e.Source && back.Kind == EdgeUsedInMnemonic {
				mirrored = true
				break
			}
		}
		assert.True(t, mirrored, "edge %s -> %s lacks its reverse", e.Source, e.Target)
	}
	assert.Equal(t, len(g.Edges), g.Meta.EdgeCount)
}

func TestBuildExcludedKanjiResolveToPrimitive(t *testing.T) {
	g := buildTestGraph(t)

	// "mouth" and "day" name excluded kanji, so the mnemonic references
	// must land on the primitive forms.
	uses := edgesFrom(g, "kanji_唱", EdgeMnemonicUses)
	targets := map[string]bool{}
	for _, e := range uses {
		targets[e.Target] = true
	}
	assert.True(t, targets["primitive_mouth"])
	assert.True(t, targets["primitive_day"])
	assert.False(t, targets["kanji_口"])
	assert.False(t, targets["kanji_日"])
}

func TestBuildOverrideWinsOverScan(t *testing.T) {
	g := buildTestGraph(t)

	// "elbow" is overridden to the character 厶, which only exists as a
	// primitive here.
	uses := edgesFrom(g, "kanji_私", EdgeMnemonicUses)
	require.Len(t, uses, 1, "wheat is unresolvable, elbow resolves")
	assert.Equal(t, "primitive_elbow", uses[0].Target)
}

func TestBuildPreferenceKeepsKanji(t *testing.T) {
	kanji := append(testKanjiRecords(), rtk.KanjiRecord{
		Character: "二", ID6: 2, Keyword6: "two", Components: "one",
	})
	b := NewBuilder(resolve.DefaultTables(), 0, nil)
	g, err := b.Build(kanji, testPrimitiveRecords(), nil)
	require.NoError(t, err)

	// Both kanji 一 and primitive 001-one.svg carry the keyword "one";
	// the preference table picks the kanji.
	uses := edgesFrom(g, "kanji_二", EdgeMnemonicUses)
	require.Len(t, uses, 1)
	assert.Equal(t, "kanji_一", uses[0].Target)
}

func TestBuildDeduplicatesRepeatedReferences(t *testing.T) {
	kanji := []rtk.KanjiRecord{
		{Character: "口", ID6: 11, Keyword6: "mouth"},
		{Character: "品", ID6: 23, Keyword6: "goods", Components: "mouth;mouth;mouth"},
	}
	b := NewBuilder(resolve.DefaultTables(), 0, nil)
	g, err := b.Build(kanji, testPrimitiveRecords(), nil)
	require.NoError(t, err)

	uses := edgesFrom(g, "kanji_品", EdgeMnemonicUses)
	assert.Len(t, uses, 1, "repeated component keywords collapse to one edge pair")
}

func TestBuildMissingMnemonics(t *testing.T) {
	g := buildTestGraph(t)

	assert.Equal(t, []string{"wheat"}, g.Meta.MissingMnemonics)
}

func TestBuildNilInputs(t *testing.T) {
	b := NewBuilder(nil, 0, nil)

	_, err := b.Build(nil, testPrimitiveRecords(), nil)
	require.Error(t, err)
	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)

	_, err = b.Build(testKanjiRecords(), nil, nil)
	require.Error(t, err)
}

func TestBuildEmptyInputsAreLegal(t *testing.T) {
	b := NewBuilder(nil, 0, nil)
	g, err := b.Build([]rtk.KanjiRecord{}, []rtk.PrimitiveRecord{}, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestBuildDuplicateIDFails(t *testing.T) {
	kanji := []rtk.KanjiRecord{
		{Character: "一", ID6: 1, Keyword6: "one"},
		{Character: "一", ID6: 2, Keyword6: "one again"},
	}
	b := NewBuilder(nil, 0, nil)
	_, err := b.Build(kanji, []rtk.PrimitiveRecord{}, nil)
	require.Error(t, err)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Contains(t, dataErr.Message, "kanji_一")
}

func TestBuildValidatedFlagsShadowedKeywords(t *testing.T) {
	kanji := []rtk.KanjiRecord{
		{Character: "木", ID6: 207, Keyword6: "tree"},
		{Character: "樹", ID6: 1571, Keyword6: "tree"},
	}
	b := NewBuilder(nil, 0, nil)
	g, diags, err := b.BuildValidated(kanji, []rtk.PrimitiveRecord{}, nil)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, []string{"tree"}, diags.DuplicateKeywords)
	assert.False(t, diags.Empty())
}
