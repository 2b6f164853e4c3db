package graph

import (
	"time"

	"github.com/teranos/rtkgraph/rtk"
)

// NodeKind discriminates the two node variants. Every site that branches on
// kind switches exhaustively over these values.
type NodeKind string

const (
	KindKanji     NodeKind = "kanji"
	KindPrimitive NodeKind = "primitive"
)

// EdgeKind labels the two directions of a mnemonic reference.
type EdgeKind string

const (
	// EdgeMnemonicUses points from a kanji to a node its memory story uses.
	EdgeMnemonicUses EdgeKind = "mnemonic_uses"
	// EdgeUsedInMnemonic is the mirrored reverse direction, created
	// atomically with its EdgeMnemonicUses twin.
	EdgeUsedInMnemonic EdgeKind = "used_in_mnemonic"
)

// Node represents one kanji or primitive in the graph.
//
// Identity: ID is a deterministic function of kind plus the sanitized record
// key (character for kanji, clean keyword for primitives) and is unique
// across the whole node set; colliding keys fail the build rather than merge.
type Node struct {
	ID        string   `json:"id"`
	Kind      NodeKind `json:"kind"`
	Character string   `json:"character"`
	Keyword   string   `json:"keyword"`
	RTKID     int      `json:"rtk_id,omitempty"` // Heisig frame number, 0 = unset

	// Kanji-only fields
	OnReading  string        `json:"on_reading,omitempty"`
	KunReading string        `json:"kun_reading,omitempty"`
	JLPT       rtk.JLPTLevel `json:"jlpt_level,omitempty"`

	// Primitive-only fields
	Unicode   string `json:"unicode,omitempty"`
	AssetPath string `json:"asset_path,omitempty"`
}

// Edge is one directed mnemonic reference between nodes.
type Edge struct {
	Source string   `json:"source"` // Node ID
	Target string   `json:"target"` // Node ID
	Kind   EdgeKind `json:"kind"`
}

// Meta contains build metadata and non-fatal diagnostics.
type Meta struct {
	GeneratedAt    time.Time `json:"generated_at"`
	KanjiCount     int       `json:"kanji_count"`
	PrimitiveCount int       `json:"primitive_count"`
	EdgeCount      int       `json:"edge_count"`
	// MissingMnemonics collects keyword tokens that resolved to no node.
	// Unresolved mnemonics are expected and non-fatal; callers log them.
	MissingMnemonics []string `json:"missing_mnemonics,omitempty"`
}

// Graph is the complete node/edge structure. It is built once per input
// pair and read-only thereafter; concurrent reads need no locking.
type Graph struct {
	Nodes []Node `json:"nodes"` // kanji nodes first, then primitives, both in input record order
	Edges []Edge `json:"edges"`
	Meta  Meta   `json:"meta"`

	byID map[string]*Node
}

// NodeByID returns the node with the given id, if present.
func (g *Graph) NodeByID(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}
