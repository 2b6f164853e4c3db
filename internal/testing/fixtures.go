// Package testing provides shared dataset fixtures for rtkgraph tests.
package testing

import (
	"testing"

	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/rtk"
	"github.com/teranos/rtkgraph/rtk/parser"
	"github.com/teranos/rtkgraph/rtk/resolve"
)

// SampleKanjiCSV is a small but representative slice of the kanji dataset:
// a header row, excluded-keyword kanji, a composite kanji, and an
// override-dependent kanji.
const SampleKanjiCSV = `kanji,id_5th_ed,id_6th_ed,keyword_5th_ed,keyword_6th_ed,components,on_reading,kun_reading
一,1,1,one,one,,イチ,ひと
口,11,11,mouth,mouth,,コウ,くち
日,12,12,day,day,,ニチ,ひ
唱,21,21,chant,chant,mouth;day,ショウ,とな.える
私,902,1017,private,private,elbow;wheat,シ,わたくし
`

// SamplePrimitiveCSV mirrors the primitive asset listing format.
const SamplePrimitiveCSV = `path,parent_frame,unicode,next_frame,is_real_heisig
001-one.svg,1,一,2,true
011-mouth.svg,11,口,12,true
012-day.svg,12,日,13,true
017-elbow.svg,,厶,,false
064-rice-field.svg,14,田,15,true
`

// SampleJLPTJSON maps a few of the sample characters to levels.
const SampleJLPTJSON = `{"一":"N5","口":"N5","日":"N5","唱":"N1"}`

// ParseSampleRecords parses the sample datasets, failing the test on any
// parse error.
func ParseSampleRecords(t *testing.T) ([]rtk.KanjiRecord, []rtk.PrimitiveRecord, map[string]rtk.JLPTLevel) {
	t.Helper()

	kanji, err := parser.ParseKanji(SampleKanjiCSV)
	if err != nil {
		t.Fatalf("failed to parse sample kanji: %v", err)
	}
	primitives, err := parser.ParsePrimitives(SamplePrimitiveCSV)
	if err != nil {
		t.Fatalf("failed to parse sample primitives: %v", err)
	}
	levels, err := parser.ParseJLPT(SampleJLPTJSON)
	if err != nil {
		t.Fatalf("failed to parse sample JLPT levels: %v", err)
	}
	return kanji, primitives, levels
}

// BuildTestGraph builds a graph from the sample datasets with default
// disambiguation tables.
func BuildTestGraph(t *testing.T) *graph.Graph {
	t.Helper()

	kanji, primitives, levels := ParseSampleRecords(t)
	b := graph.NewBuilder(resolve.DefaultTables(), 0, nil)
	g, err := b.Build(kanji, primitives, levels)
	if err != nil {
		t.Fatalf("failed to build sample graph: %v", err)
	}
	return g
}
