package commands

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rtkgraph/graph"
	"github.com/teranos/rtkgraph/rtk/resolve"
	"github.com/teranos/rtkgraph/sym"
)

// ResolveCmd represents the resolve command
var ResolveCmd = &cobra.Command{
	Use:   "resolve TEXT...",
	Short: sym.Uses + " Show how mnemonic keywords disambiguate",
	Long: sym.Uses + ` resolve — Show how mnemonic keywords disambiguate

Splits free text into mnemonic keywords and reports, for each one, which
rule picks its node: an explicit override, the kanji-preference list, the
primitive-first scan, the id fallback, or nothing at all.

Examples:
  rtkgraph resolve "mouth;day"
  rtkgraph resolve elbow one "rice field"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolveCommand,
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	g, cfg, err := loadGraph(cmd)
	if err != nil {
		return err
	}
	tables := cfg.Resolver.Tables()

	for _, token := range splitKeywords(strings.Join(args, " ")) {
		rule, target := classify(token, tables, g)
		if target == nil {
			pterm.Printf("%s %-20s %s\n", sym.Missing, token, rule)
			continue
		}
		marker := sym.Primitive
		if target.Kind == graph.KindKanji {
			marker = sym.Kanji
		}
		pterm.Printf("%s %-20s %s  %s %s (%s)\n", marker, token, rule, sym.Uses, target.Character, target.ID)
	}
	return nil
}

// splitKeywords tokenizes free text: shell-style words first (so quoted
// multi-word keywords survive), falling back to whitespace fields on
// malformed quoting, then semicolon-separated lists inside each word.
func splitKeywords(text string) []string {
	words, err := shellquote.Split(text)
	if err != nil {
		words = strings.Fields(text)
	}

	var keywords []string
	for _, word := range words {
		for _, part := range strings.Split(word, ";") {
			part = strings.TrimSpace(part)
			if part != "" {
				keywords = append(keywords, part)
			}
		}
	}
	return keywords
}

// classify mirrors the builder's resolution order and names the rule that
// fires for a token.
func classify(token string, tables *resolve.Tables, g *graph.Graph) (string, *graph.Node) {
	if char, ok := tables.Resolve(token); ok {
		if node, found := g.NodeByID(graph.NodeID(graph.KindKanji, char)); found {
			return "override", node
		}
		if node := scanByCharacter(g, char); node != nil {
			return "override", node
		}
	}

	preferred := tables.PrefersKanji(token)
	kanjiMatch := scanByKeyword(g, graph.KindKanji, token, tables)
	primitiveMatch := scanByKeyword(g, graph.KindPrimitive, token, nil)

	if preferred {
		if kanjiMatch != nil {
			return "kanji-preferred", kanjiMatch
		}
		if primitiveMatch != nil {
			return "kanji-preferred (primitive fallback)", primitiveMatch
		}
	} else {
		if primitiveMatch != nil {
			return "primitive-first", primitiveMatch
		}
		if kanjiMatch != nil {
			return "primitive-first (kanji fallback)", kanjiMatch
		}
	}

	if node, found := g.NodeByID(graph.NodeID(graph.KindKanji, token)); found && !tables.IsExcluded(node.Character) {
		return "id fallback", node
	}
	if node, found := g.NodeByID(graph.NodeID(graph.KindPrimitive, token)); found {
		return "id fallback", node
	}

	return "no matching node", nil
}

func scanByCharacter(g *graph.Graph, char string) *graph.Node {
	for i := range g.Nodes {
		if g.Nodes[i].Kind == graph.KindPrimitive && g.Nodes[i].Character == char {
			return &g.Nodes[i]
		}
	}
	return nil
}

// scanByKeyword walks nodes in creation order; a non-nil tables skips
// excluded kanji.
func scanByKeyword(g *graph.Graph, kind graph.NodeKind, keyword string, tables *resolve.Tables) *graph.Node {
	for i := range g.Nodes {
		node := &g.Nodes[i]
		if node.Kind != kind || node.Keyword != keyword {
			continue
		}
		if tables != nil && tables.IsExcluded(node.Character) {
			continue
		}
		return node
	}
	return nil
}
